package validators

import "go.mongodb.org/mongo-driver/bson"

var price = bson.M{
	"bsonType": []string{"double", "int", "long", "decimal"},
	"minimum":  0,
}

var FlightValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"flightNumber",
			"airline",
			"origin",
			"destination",
			"departureTime",
			"arrivalTime",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id":           bson.M{"bsonType": "objectId"},
			"flightNumber":  bson.M{"bsonType": "string", "minLength": 1},
			"airline":       bson.M{"bsonType": "string", "minLength": 1},
			"origin":        bson.M{"bsonType": "string", "minLength": 1},
			"destination":   bson.M{"bsonType": "string", "minLength": 1},
			"departureTime": bson.M{"bsonType": "date"},
			"arrivalTime":   bson.M{"bsonType": "date"},
			"price":         price,
			"seatsAvailable": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},
		},
	},
}

var HotelValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"location",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id":           bson.M{"bsonType": "objectId"},
			"name":          bson.M{"bsonType": "string", "minLength": 1},
			"location":      bson.M{"bsonType": "string", "minLength": 1},
			"pricePerNight": price,
			"rating": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
				"maximum":  5,
			},
			"amenities": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},
			"availableRooms": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},
		},
	},
}

var CarValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"make",
			"model",
			"year",
			"location",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id":         bson.M{"bsonType": "objectId"},
			"make":        bson.M{"bsonType": "string", "minLength": 1},
			"model":       bson.M{"bsonType": "string", "minLength": 1},
			"year":        bson.M{"bsonType": []string{"int", "long"}},
			"pricePerDay": price,
			"location":    bson.M{"bsonType": "string", "minLength": 1},
			"isAvailable": bson.M{"bsonType": "bool"},
		},
	},
}

var TravelPackageValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"destination",
			"duration",
			"category",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id":         bson.M{"bsonType": "objectId"},
			"title":       bson.M{"bsonType": "string", "minLength": 1},
			"destination": bson.M{"bsonType": "string", "minLength": 1},
			"price":       price,
			"duration": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
			},
			"category": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Adventure",
					"Family",
					"Cultural",
					"Honeymoon",
					"Friendship",
				},
			},
			"ratings": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  1,
				"maximum":  5,
			},
			"availability": bson.M{"bsonType": "bool"},
		},
	},
}

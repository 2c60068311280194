package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"user",
			"type",
			"startDate",
			"totalPrice",
			"status",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"user": bson.M{
				"bsonType": "objectId",
			},

			"type": bson.M{
				"bsonType": "string",
				"enum": []string{
					"flight",
					"hotel",
					"car",
					"package",
					"custom",
				},
			},

			"flight": bson.M{
				"bsonType": "objectId",
			},

			"hotel": bson.M{
				"bsonType": "objectId",
			},

			"car": bson.M{
				"bsonType": "objectId",
			},

			"travelPackage": bson.M{
				"bsonType": "objectId",
			},

			"startDate": bson.M{
				"bsonType": "date",
			},

			"endDate": bson.M{
				"bsonType": "date",
			},

			"totalPrice": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
					"cancelled",
				},
			},

			"createdAt": bson.M{
				"bsonType": "date",
			},

			"updatedAt": bson.M{
				"bsonType": "date",
			},
		},
	},
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking type discriminator values. The type selects which reference-presence
// rule applies on creation.
const (
	BookingTypeFlight  = "flight"
	BookingTypeHotel   = "hotel"
	BookingTypeCar     = "car"
	BookingTypePackage = "package"
	BookingTypeCustom  = "custom"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking references zero or more catalog documents via its type discriminator.
// Reference fields irrelevant to the chosen type are persisted as submitted;
// nothing is stripped or nulled out.
type Booking struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	User          primitive.ObjectID  `json:"user" bson:"user" validate:"required"`
	Type          string              `json:"type" bson:"type" validate:"required,oneof=flight hotel car package custom"`
	Flight        *primitive.ObjectID `json:"flight,omitempty" bson:"flight,omitempty"`
	Hotel         *primitive.ObjectID `json:"hotel,omitempty" bson:"hotel,omitempty"`
	Car           *primitive.ObjectID `json:"car,omitempty" bson:"car,omitempty"`
	TravelPackage *primitive.ObjectID `json:"travelPackage,omitempty" bson:"travelPackage,omitempty"`
	StartDate     time.Time           `json:"startDate" bson:"startDate" validate:"required"`
	EndDate       *time.Time          `json:"endDate,omitempty" bson:"endDate,omitempty"`
	TotalPrice    *float64            `json:"totalPrice" bson:"totalPrice" validate:"required,min=0"`
	Status        string              `json:"status" bson:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	CreatedAt     time.Time           `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time           `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// UserSummary is the projection of a user embedded in populated bookings.
type UserSummary struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
}

// PopulatedBooking is a booking with its references resolved to the documents
// they point at. The admin listing embeds the user summary; user-scoped
// listings leave it empty.
type PopulatedBooking struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	User          *UserSummary       `json:"user,omitempty" bson:"user,omitempty"`
	Type          string             `json:"type" bson:"type"`
	Flight        *Flight            `json:"flight,omitempty" bson:"flight,omitempty"`
	Hotel         *Hotel             `json:"hotel,omitempty" bson:"hotel,omitempty"`
	Car           *Car               `json:"car,omitempty" bson:"car,omitempty"`
	TravelPackage *TravelPackage     `json:"travelPackage,omitempty" bson:"travelPackage,omitempty"`
	StartDate     time.Time          `json:"startDate" bson:"startDate"`
	EndDate       *time.Time         `json:"endDate,omitempty" bson:"endDate,omitempty"`
	TotalPrice    float64            `json:"totalPrice" bson:"totalPrice"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

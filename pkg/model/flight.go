package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Flight struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FlightNumber   string             `json:"flightNumber" bson:"flightNumber" validate:"required"`
	Airline        string             `json:"airline" bson:"airline" validate:"required"`
	Origin         string             `json:"origin" bson:"origin" validate:"required"`
	Destination    string             `json:"destination" bson:"destination" validate:"required"`
	DepartureTime  time.Time          `json:"departureTime" bson:"departureTime" validate:"required"`
	ArrivalTime    time.Time          `json:"arrivalTime" bson:"arrivalTime" validate:"required"`
	Duration       string             `json:"duration,omitempty" bson:"duration,omitempty"`
	Price          float64            `json:"price" bson:"price" validate:"min=0"`
	Image          string             `json:"image,omitempty" bson:"image,omitempty"`
	SeatsAvailable int                `json:"seatsAvailable" bson:"seatsAvailable"`
	CreatedAt      time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt      time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

func (f *Flight) GetID() primitive.ObjectID   { return f.ID }
func (f *Flight) SetID(id primitive.ObjectID) { f.ID = id }
func (f *Flight) Trim()                       { trimAll(&f.FlightNumber, &f.Airline, &f.Origin, &f.Destination) }

func (f *Flight) Stamp(now time.Time) {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now
}

type FlightUpdate struct {
	FlightNumber   *string    `json:"flightNumber,omitempty"`
	Airline        *string    `json:"airline,omitempty"`
	Origin         *string    `json:"origin,omitempty"`
	Destination    *string    `json:"destination,omitempty"`
	DepartureTime  *time.Time `json:"departureTime,omitempty"`
	ArrivalTime    *time.Time `json:"arrivalTime,omitempty"`
	Duration       *string    `json:"duration,omitempty"`
	Price          *float64   `json:"price,omitempty" validate:"omitempty,min=0"`
	Image          *string    `json:"image,omitempty"`
	SeatsAvailable *int       `json:"seatsAvailable,omitempty"`
}

func (u *FlightUpdate) ApplyTo(f *Flight) {
	applyStr(u.FlightNumber, &f.FlightNumber)
	applyStr(u.Airline, &f.Airline)
	applyStr(u.Origin, &f.Origin)
	applyStr(u.Destination, &f.Destination)
	applyTime(u.DepartureTime, &f.DepartureTime)
	applyTime(u.ArrivalTime, &f.ArrivalTime)
	applyStr(u.Duration, &f.Duration)
	if u.Price != nil {
		f.Price = *u.Price
	}
	applyStr(u.Image, &f.Image)
	if u.SeatsAvailable != nil {
		f.SeatsAvailable = *u.SeatsAvailable
	}
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Hotel struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" validate:"required"`
	Location       string             `json:"location" bson:"location" validate:"required"`
	PricePerNight  float64            `json:"pricePerNight" bson:"pricePerNight" validate:"min=0"`
	Rating         float64            `json:"rating" bson:"rating" validate:"min=0,max=5"`
	Amenities      []string           `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Image          string             `json:"image,omitempty" bson:"image,omitempty"`
	AvailableRooms int                `json:"availableRooms" bson:"availableRooms"`
	CreatedAt      time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt      time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

func (h *Hotel) GetID() primitive.ObjectID   { return h.ID }
func (h *Hotel) SetID(id primitive.ObjectID) { h.ID = id }
func (h *Hotel) Trim()                       { trimAll(&h.Name, &h.Location) }

func (h *Hotel) Stamp(now time.Time) {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = now
	}
	h.UpdatedAt = now
}

type HotelUpdate struct {
	Name           *string   `json:"name,omitempty"`
	Location       *string   `json:"location,omitempty"`
	PricePerNight  *float64  `json:"pricePerNight,omitempty" validate:"omitempty,min=0"`
	Rating         *float64  `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Amenities      *[]string `json:"amenities,omitempty"`
	Image          *string   `json:"image,omitempty"`
	AvailableRooms *int      `json:"availableRooms,omitempty"`
}

func (u *HotelUpdate) ApplyTo(h *Hotel) {
	applyStr(u.Name, &h.Name)
	applyStr(u.Location, &h.Location)
	if u.PricePerNight != nil {
		h.PricePerNight = *u.PricePerNight
	}
	if u.Rating != nil {
		h.Rating = *u.Rating
	}
	if u.Amenities != nil {
		h.Amenities = *u.Amenities
	}
	applyStr(u.Image, &h.Image)
	if u.AvailableRooms != nil {
		h.AvailableRooms = *u.AvailableRooms
	}
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Car struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Make        string             `json:"make" bson:"make" validate:"required"`
	Model       string             `json:"model" bson:"model" validate:"required"`
	Year        int                `json:"year" bson:"year" validate:"required"`
	PricePerDay float64            `json:"pricePerDay" bson:"pricePerDay" validate:"min=0"`
	Location    string             `json:"location" bson:"location" validate:"required"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	IsAvailable *bool              `json:"isAvailable,omitempty" bson:"isAvailable,omitempty"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

func (c *Car) GetID() primitive.ObjectID   { return c.ID }
func (c *Car) SetID(id primitive.ObjectID) { c.ID = id }

func (c *Car) Trim() {
	trimAll(&c.Make, &c.Model, &c.Location)
	if c.IsAvailable == nil {
		available := true
		c.IsAvailable = &available
	}
}

func (c *Car) Stamp(now time.Time) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}

type CarUpdate struct {
	Make        *string  `json:"make,omitempty"`
	Model       *string  `json:"model,omitempty"`
	Year        *int     `json:"year,omitempty"`
	PricePerDay *float64 `json:"pricePerDay,omitempty" validate:"omitempty,min=0"`
	Location    *string  `json:"location,omitempty"`
	Image       *string  `json:"image,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

func (u *CarUpdate) ApplyTo(c *Car) {
	applyStr(u.Make, &c.Make)
	applyStr(u.Model, &c.Model)
	if u.Year != nil {
		c.Year = *u.Year
	}
	if u.PricePerDay != nil {
		c.PricePerDay = *u.PricePerDay
	}
	applyStr(u.Location, &c.Location)
	applyStr(u.Image, &c.Image)
	if u.IsAvailable != nil {
		c.IsAvailable = u.IsAvailable
	}
}

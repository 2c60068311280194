package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultPackageDescription = "No description provided"

type TravelPackage struct {
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Title          string               `json:"title" bson:"title" validate:"required"`
	Description    string               `json:"description,omitempty" bson:"description,omitempty"`
	Destination    string               `json:"destination" bson:"destination" validate:"required"`
	Price          float64              `json:"price" bson:"price" validate:"min=0"`
	Duration       int                  `json:"duration" bson:"duration" validate:"required"`
	Images         []string             `json:"images,omitempty" bson:"images,omitempty"`
	Category       string               `json:"category" bson:"category" validate:"required,oneof=Adventure Family Cultural Honeymoon Friendship"`
	Availability   *bool                `json:"availability,omitempty" bson:"availability,omitempty"`
	AvailableDates []time.Time          `json:"availableDates,omitempty" bson:"availableDates,omitempty"`
	Ratings        *float64             `json:"ratings,omitempty" bson:"ratings,omitempty" validate:"omitempty,min=1,max=5"`
	Reviews        []primitive.ObjectID `json:"reviews,omitempty" bson:"reviews,omitempty"`
	CreatedAt      time.Time            `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt      time.Time            `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

func (p *TravelPackage) GetID() primitive.ObjectID   { return p.ID }
func (p *TravelPackage) SetID(id primitive.ObjectID) { p.ID = id }

func (p *TravelPackage) Stamp(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

func (p *TravelPackage) Trim() {
	trimAll(&p.Title, &p.Destination)
	if p.Description == "" {
		p.Description = DefaultPackageDescription
	}
	if p.Availability == nil {
		available := true
		p.Availability = &available
	}
}

type TravelPackageUpdate struct {
	Title          *string      `json:"title,omitempty"`
	Description    *string      `json:"description,omitempty"`
	Destination    *string      `json:"destination,omitempty"`
	Price          *float64     `json:"price,omitempty" validate:"omitempty,min=0"`
	Duration       *int         `json:"duration,omitempty"`
	Images         *[]string    `json:"images,omitempty"`
	Category       *string      `json:"category,omitempty" validate:"omitempty,oneof=Adventure Family Cultural Honeymoon Friendship"`
	Availability   *bool        `json:"availability,omitempty"`
	AvailableDates *[]time.Time `json:"availableDates,omitempty"`
	Ratings        *float64     `json:"ratings,omitempty" validate:"omitempty,min=1,max=5"`
}

func (u *TravelPackageUpdate) ApplyTo(p *TravelPackage) {
	applyStr(u.Title, &p.Title)
	applyStr(u.Description, &p.Description)
	applyStr(u.Destination, &p.Destination)
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Duration != nil {
		p.Duration = *u.Duration
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	applyStr(u.Category, &p.Category)
	if u.Availability != nil {
		p.Availability = u.Availability
	}
	if u.AvailableDates != nil {
		p.AvailableDates = *u.AvailableDates
	}
	if u.Ratings != nil {
		p.Ratings = u.Ratings
	}
}

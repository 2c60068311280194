package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	DefaultCurrencyPreference = "BDT"
	DefaultLanguagePreference = "Bangla"
)

// User holds the account record. The password hash never leaves the API.
type User struct {
	ID                 primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name               string               `json:"name" bson:"name" validate:"required"`
	Email              string               `json:"email" bson:"email" validate:"required,email"`
	Password           string               `json:"-" bson:"password"`
	Type               string               `json:"type" bson:"type" validate:"omitempty,oneof=user admin"`
	PhoneNumber        string               `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	Address            string               `json:"address,omitempty" bson:"address,omitempty"`
	DOB                *time.Time           `json:"dob,omitempty" bson:"dob,omitempty"`
	Wishlist           []primitive.ObjectID `json:"wishlist,omitempty" bson:"wishlist,omitempty"`
	CurrencyPreference string               `json:"currencyPreference,omitempty" bson:"currencyPreference,omitempty"`
	LanguagePreference string               `json:"languagePreference,omitempty" bson:"languagePreference,omitempty"`
	IsVerified         bool                 `json:"isVerified" bson:"isVerified"`
	CreatedAt          time.Time            `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt          time.Time            `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type SignupRequest struct {
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=6"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Address     string     `json:"address,omitempty"`
	DOB         *time.Time `json:"dob,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type UserUpdate struct {
	Name        *string    `json:"name,omitempty"`
	PhoneNumber *string    `json:"phoneNumber,omitempty"`
	Address     *string    `json:"address,omitempty"`
	DOB         *time.Time `json:"dob,omitempty"`
}

func (u *UserUpdate) ApplyTo(user *User) {
	applyStr(u.Name, &user.Name)
	applyStr(u.PhoneNumber, &user.PhoneNumber)
	applyStr(u.Address, &user.Address)
	if u.DOB != nil {
		user.DOB = u.DOB
	}
}

type PreferencesUpdate struct {
	CurrencyPreference *string `json:"currencyPreference,omitempty"`
	LanguagePreference *string `json:"languagePreference,omitempty"`
}

func (p *PreferencesUpdate) ApplyTo(user *User) {
	applyStr(p.CurrencyPreference, &user.CurrencyPreference)
	applyStr(p.LanguagePreference, &user.LanguagePreference)
}

type WishlistRequest struct {
	Item primitive.ObjectID `json:"item" validate:"required"`
}

package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"voyago/pkg/logger"
	"voyago/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return v.Message
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// referenceRule declares which reference fields a booking type requires.
// One case per type; new booking types are added here, not by branching in
// the service.
type referenceRule struct {
	message   string
	satisfied func(b *model.Booking) bool
}

var referenceRules = map[string]referenceRule{
	model.BookingTypeFlight: {
		message:   "Flight ID is required for flight booking",
		satisfied: func(b *model.Booking) bool { return b.Flight != nil },
	},
	model.BookingTypeHotel: {
		message:   "Hotel ID is required for hotel booking",
		satisfied: func(b *model.Booking) bool { return b.Hotel != nil },
	},
	model.BookingTypeCar: {
		message:   "Car ID is required for car booking",
		satisfied: func(b *model.Booking) bool { return b.Car != nil },
	},
	model.BookingTypePackage: {
		message:   "Travel Package ID is required for package booking",
		satisfied: func(b *model.Booking) bool { return b.TravelPackage != nil },
	},
	model.BookingTypeCustom: {
		message:   "For custom bookings, you must choose at least one transportation method (Flight or Car)",
		satisfied: func(b *model.Booking) bool { return b.Flight != nil || b.Car != nil },
	},
}

type BookingValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	return &BookingValidator{
		validate: validator.New(),
		log:      log,
	}
}

// Validate applies the per-type reference rule first, then the schema
// constraints. Reference fields irrelevant to the chosen type are accepted
// and left untouched; only presence of the required ones is checked.
func (v *BookingValidator) Validate(booking *model.Booking) error {
	if rule, ok := referenceRules[booking.Type]; ok {
		if !rule.satisfied(booking) {
			return ValidationErrors{
				ValidationError{Field: "type", Message: rule.message},
			}
		}
	}

	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

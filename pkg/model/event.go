package model

import "time"

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published to the booking-events topic whenever
// a booking is created or cancelled.
type BookingEvent struct {
	EventType  string    `json:"eventType"`
	BookingID  string    `json:"bookingId"`
	UserID     string    `json:"userId"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"totalPrice"`
	OccurredAt time.Time `json:"occurredAt"`
}

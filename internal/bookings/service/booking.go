package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	bookingserrors "voyago/internal/bookings/errors"
	"voyago/internal/bookings/repository"
	"voyago/internal/bookings/validator"
	"voyago/pkg/config"
	apperrors "voyago/pkg/errors"
	"voyago/pkg/model"
)

// EventPublisher fans booking lifecycle events out to the events topic.
// Publishing is best-effort: failures are logged and never fail the request.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event model.BookingEvent) error
}

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetAll(ctx context.Context) ([]*model.PopulatedBooking, error)
	GetByUser(ctx context.Context, userID string) ([]*model.PopulatedBooking, error)
	Cancel(ctx context.Context, id string) (*model.Booking, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	events    EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	bookingValidator *validator.BookingValidator,
	events EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: bookingValidator,
		events:    events,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.applyDefaults(booking)

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "type", booking.Type, "error", err)
		return apperrors.Validation(err.Error())
	}

	// The payload is persisted as submitted: reference fields irrelevant to
	// the chosen type are kept, not nulled out.
	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal(err.Error(), err)
	}

	s.publishEvent(ctx, model.EventBookingCreated, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID.Hex(),
		"user", booking.User.Hex(),
		"type", booking.Type,
		"status", booking.Status,
	)
	return nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.PopulatedBooking, error) {
	bookings, err := s.repo.FindAllPopulated(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}
	return bookings, nil
}

func (s *bookingService) GetByUser(ctx context.Context, userID string) ([]*model.PopulatedBooking, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid user ID format")
	}

	bookings, err := s.repo.FindByUserPopulated(ctx, objectID)
	if err != nil {
		s.cfg.Log.Error("Failed to list user bookings", "user", userID, "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}
	return bookings, nil
}

func (s *bookingService) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) || errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("Booking")
		}
		s.cfg.Log.Error("Failed to cancel booking", "id", id, "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}

	s.publishEvent(ctx, model.EventBookingCancelled, booking)

	s.cfg.Log.Info("Booking cancelled", "id", id)
	return booking, nil
}

func (s *bookingService) applyDefaults(b *model.Booking) {
	if b.Status == "" {
		b.Status = model.BookingStatusConfirmed
	}
}

func (s *bookingService) publishEvent(ctx context.Context, eventType string, booking *model.Booking) {
	if s.events == nil {
		return
	}

	event := model.BookingEvent{
		EventType:  eventType,
		BookingID:  booking.ID.Hex(),
		UserID:     booking.User.Hex(),
		Type:       booking.Type,
		Status:     booking.Status,
		OccurredAt: time.Now().UTC(),
	}
	if booking.TotalPrice != nil {
		event.TotalPrice = *booking.TotalPrice
	}

	if err := s.events.PublishBookingEvent(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", event.BookingID,
			"error", err,
		)
	}
}

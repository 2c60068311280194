package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingserrors "voyago/internal/bookings/errors"
	"voyago/pkg/config"
	"voyago/pkg/model"
)

const (
	CollectionName = "Bookings"

	usersCollection    = "Users"
	flightsCollection  = "Flights"
	hotelsCollection   = "Hotels"
	carsCollection     = "Cars"
	packagesCollection = "TravelPackages"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindAllPopulated(ctx context.Context) ([]*model.PopulatedBooking, error)
	FindByUserPopulated(ctx context.Context, userID primitive.ObjectID) ([]*model.PopulatedBooking, error)
	Cancel(ctx context.Context, id string) (*model.Booking, error)
}

type mongoBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoBookingRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	booking.CreatedAt = now
	booking.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return nil
}

// populationStages resolves booking references the way the API serves them:
// the user lookup is projected down to name and email, the resource lookups
// embed the full documents.
func populationStages(includeUser bool) mongo.Pipeline {
	stages := mongo.Pipeline{}

	if includeUser {
		stages = append(stages,
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         usersCollection,
				"localField":   "user",
				"foreignField": "_id",
				"as":           "user",
				"pipeline": []bson.M{
					{"$project": bson.M{"name": 1, "email": 1}},
				},
			}}},
			bson.D{{Key: "$unwind", Value: bson.M{
				"path":                       "$user",
				"preserveNullAndEmptyArrays": true,
			}}},
		)
	} else {
		stages = append(stages, bson.D{{Key: "$unset", Value: "user"}})
	}

	refs := []struct {
		field string
		from  string
	}{
		{"flight", flightsCollection},
		{"hotel", hotelsCollection},
		{"car", carsCollection},
		{"travelPackage", packagesCollection},
	}
	for _, ref := range refs {
		stages = append(stages,
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         ref.from,
				"localField":   ref.field,
				"foreignField": "_id",
				"as":           ref.field,
			}}},
			bson.D{{Key: "$unwind", Value: bson.M{
				"path":                       "$" + ref.field,
				"preserveNullAndEmptyArrays": true,
			}}},
		)
	}

	return stages
}

func (r *mongoBookingRepository) FindAllPopulated(ctx context.Context) ([]*model.PopulatedBooking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	pipeline := append(mongo.Pipeline{}, populationStages(true)...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}})

	return r.aggregate(ctx, pipeline)
}

func (r *mongoBookingRepository) FindByUserPopulated(ctx context.Context, userID primitive.ObjectID) ([]*model.PopulatedBooking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user": userID}}},
	}
	pipeline = append(pipeline, populationStages(false)...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}})

	return r.aggregate(ctx, pipeline)
}

func (r *mongoBookingRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*model.PopulatedBooking, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []*model.PopulatedBooking{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// Cancel unconditionally sets status to cancelled and returns the updated
// document. Cancelling an already-cancelled booking is a no-op that still
// returns the record.
func (r *mongoBookingRepository) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{
		"status":    model.BookingStatusCancelled,
		"updatedAt": time.Now().UTC().Truncate(time.Millisecond),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking model.Booking
	err = r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	return &booking, nil
}

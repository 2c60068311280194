package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"voyago/pkg/config"
	"voyago/pkg/model"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document ID")
)

// Entity ties a catalog document type to its pointer form, which carries the
// Resource methods.
type Entity[T any] interface {
	*T
	model.Resource
}

// ResourceRepository is the uniform persistence surface shared by all four
// catalog collections. The document shapes differ; the access patterns do not.
type ResourceRepository[T any, PT Entity[T]] interface {
	Create(ctx context.Context, doc PT) error
	FindAll(ctx context.Context) ([]PT, error)
	FindByID(ctx context.Context, id string) (PT, error)
	Replace(ctx context.Context, id string, doc PT) error
	Delete(ctx context.Context, id string) error
}

type mongoResourceRepository[T any, PT Entity[T]] struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoResourceRepository[T any, PT Entity[T]](cfg *config.Config, collectionName string) ResourceRepository[T, PT] {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoResourceRepository[T, PT]{
		cfg:        cfg,
		collection: db.Collection(collectionName),
	}
}

func (r *mongoResourceRepository[T, PT]) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoResourceRepository[T, PT]) Create(ctx context.Context, doc PT) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	doc.Stamp(time.Now().UTC().Truncate(time.Millisecond))

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		doc.SetID(oid)
	}
	return nil
}

func (r *mongoResourceRepository[T, PT]) FindAll(ctx context.Context) ([]PT, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []PT{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}
	return docs, nil
}

func (r *mongoResourceRepository[T, PT]) FindByID(ctx context.Context, id string) (PT, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	var doc T
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	return PT(&doc), nil
}

func (r *mongoResourceRepository[T, PT]) Replace(ctx context.Context, id string, doc PT) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	doc.Stamp(time.Now().UTC().Truncate(time.Millisecond))

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoResourceRepository[T, PT]) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"voyago/internal/catalog/repository"
	"voyago/internal/catalog/validator"
	"voyago/pkg/config"
	apperrors "voyago/pkg/errors"
	"voyago/pkg/model"
)

// ResourceService carries the shared CRUD semantics of the catalog: trim and
// validate on write, merge partial updates onto the stored document, report
// misses by resource name.
type ResourceService[T any, PT repository.Entity[T]] interface {
	Create(ctx context.Context, doc PT) error
	GetAll(ctx context.Context) ([]PT, error)
	GetByID(ctx context.Context, id string) (PT, error)
	Update(ctx context.Context, id string, patch model.Patch[T]) (PT, error)
	Delete(ctx context.Context, id string) error
}

type resourceService[T any, PT repository.Entity[T]] struct {
	name      string
	repo      repository.ResourceRepository[T, PT]
	validator *validator.ResourceValidator
	cfg       *config.Config
}

// NewResourceService builds a service for one catalog collection. The name is
// the display form used in error messages ("Flight", "Travel package").
func NewResourceService[T any, PT repository.Entity[T]](
	name string,
	repo repository.ResourceRepository[T, PT],
	resourceValidator *validator.ResourceValidator,
	cfg *config.Config,
) ResourceService[T, PT] {
	return &resourceService[T, PT]{
		name:      name,
		repo:      repo,
		validator: resourceValidator,
		cfg:       cfg,
	}
}

func (s *resourceService[T, PT]) Create(ctx context.Context, doc PT) error {
	doc.Trim()

	if err := s.validator.Validate(doc); err != nil {
		s.cfg.Log.Warn("Validation failed", "resource", s.name, "error", err)
		return apperrors.Validation(err.Error())
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		s.cfg.Log.Error("Failed to create document", "resource", s.name, "error", err)
		return apperrors.Internal(err.Error(), err)
	}

	s.cfg.Log.Info("Document created", "resource", s.name, "id", doc.GetID().Hex())
	return nil
}

func (s *resourceService[T, PT]) GetAll(ctx context.Context) ([]PT, error) {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list documents", "resource", s.name, "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}
	return docs, nil
}

func (s *resourceService[T, PT]) GetByID(ctx context.Context, id string) (PT, error) {
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, apperrors.NotFound(s.name)
		}
		s.cfg.Log.Error("Failed to find document", "resource", s.name, "id", id, "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}
	return doc, nil
}

func (s *resourceService[T, PT]) Update(ctx context.Context, id string, patch model.Patch[T]) (PT, error) {
	doc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo((*T)(doc))
	doc.Trim()

	if err := s.validator.Validate(doc); err != nil {
		s.cfg.Log.Warn("Validation failed", "resource", s.name, "id", id, "error", err)
		return nil, apperrors.Validation(err.Error())
	}

	if err := s.repo.Replace(ctx, id, doc); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, apperrors.NotFound(s.name)
		}
		s.cfg.Log.Error("Failed to update document", "resource", s.name, "id", id, "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}

	s.cfg.Log.Info("Document updated", "resource", s.name, "id", id)
	return doc, nil
}

func (s *resourceService[T, PT]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return apperrors.NotFound(s.name)
		}
		s.cfg.Log.Error("Failed to delete document", "resource", s.name, "id", id, "error", err)
		return apperrors.Internal(err.Error(), err)
	}

	s.cfg.Log.Info("Document deleted", "resource", s.name, "id", id)
	return nil
}

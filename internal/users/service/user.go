package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"voyago/internal/auth"
	userserrors "voyago/internal/users/errors"
	"voyago/internal/users/repository"
	"voyago/internal/users/validator"
	"voyago/pkg/config"
	apperrors "voyago/pkg/errors"
	"voyago/pkg/model"
)

type UserService interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetProfile(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, id string, patch *model.UserUpdate) (*model.User, error)
	DeleteProfile(ctx context.Context, id string) error
	AddToWishlist(ctx context.Context, id string, item primitive.ObjectID) (*model.User, error)
	RemoveFromWishlist(ctx context.Context, id string, item primitive.ObjectID) (*model.User, error)
	UpdatePreferences(ctx context.Context, id string, patch *model.PreferencesUpdate) (*model.User, error)

	// FindByID satisfies auth.UserResolver so the service backs the token gate.
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.UserValidator
	tokens    *auth.TokenManager
	cfg       *config.Config
}

func NewUserService(
	repo repository.UserRepository,
	userValidator *validator.UserValidator,
	tokens *auth.TokenManager,
	cfg *config.Config,
) UserService {
	return &userService{
		repo:      repo,
		validator: userValidator,
		tokens:    tokens,
		cfg:       cfg,
	}
}

func (s *userService) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Signup validation failed", "error", err)
		return nil, apperrors.Validation(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.cfg.Log.Error("Failed to hash password", "error", err)
		return nil, apperrors.Internal("Failed to process password", err)
	}

	user := &model.User{
		Name:               req.Name,
		Email:              req.Email,
		Password:           string(hash),
		Type:               model.RoleUser,
		PhoneNumber:        strings.TrimSpace(req.PhoneNumber),
		Address:            strings.TrimSpace(req.Address),
		DOB:                req.DOB,
		CurrencyPreference: model.DefaultCurrencyPreference,
		LanguagePreference: model.DefaultLanguagePreference,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userserrors.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("Email already in use")
		}
		s.cfg.Log.Error("Failed to create user", "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}

	s.cfg.Log.Info("User signed up", "id", user.ID.Hex(), "email", user.Email)
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validator.Validate(req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("Invalid email or password")
		}
		s.cfg.Log.Error("Failed to look up user", "email", req.Email, "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		s.cfg.Log.Error("Failed to issue token", "user", user.ID.Hex(), "error", err)
		return nil, apperrors.Internal("Failed to issue token", err)
	}

	s.cfg.Log.Info("User logged in", "id", user.ID.Hex())
	return &model.LoginResponse{Token: token, User: user}, nil
}

func (s *userService) GetProfile(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) || errors.Is(err, userserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("User")
		}
		s.cfg.Log.Error("Failed to find user", "id", id, "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, patch *model.UserUpdate) (*model.User, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(user)
	user.Name = strings.TrimSpace(user.Name)

	if err := s.validator.Validate(user); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := s.repo.Replace(ctx, user); err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		s.cfg.Log.Error("Failed to update user", "id", id, "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}

	s.cfg.Log.Info("User profile updated", "id", id)
	return user, nil
}

func (s *userService) DeleteProfile(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, userserrors.ErrNotFound) || errors.Is(err, userserrors.ErrInvalidID) {
			return apperrors.NotFound("User")
		}
		s.cfg.Log.Error("Failed to delete user", "id", id, "error", err)
		return apperrors.Internal(err.Error(), err)
	}

	s.cfg.Log.Info("User deleted", "id", id)
	return nil
}

func (s *userService) AddToWishlist(ctx context.Context, id string, item primitive.ObjectID) (*model.User, error) {
	if item.IsZero() {
		return nil, apperrors.InvalidInput("Wishlist item is required")
	}
	user, err := s.repo.AddToWishlist(ctx, id, item)
	if err != nil {
		return nil, s.wishlistError(id, err)
	}

	s.cfg.Log.Info("Wishlist item added", "user", id, "item", item.Hex())
	return user, nil
}

func (s *userService) RemoveFromWishlist(ctx context.Context, id string, item primitive.ObjectID) (*model.User, error) {
	if item.IsZero() {
		return nil, apperrors.InvalidInput("Wishlist item is required")
	}
	user, err := s.repo.RemoveFromWishlist(ctx, id, item)
	if err != nil {
		return nil, s.wishlistError(id, err)
	}

	s.cfg.Log.Info("Wishlist item removed", "user", id, "item", item.Hex())
	return user, nil
}

func (s *userService) UpdatePreferences(ctx context.Context, id string, patch *model.PreferencesUpdate) (*model.User, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(user)

	if err := s.repo.Replace(ctx, user); err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return nil, apperrors.NotFound("User")
		}
		s.cfg.Log.Error("Failed to update preferences", "id", id, "error", err)
		return nil, apperrors.Internal(err.Error(), err)
	}

	s.cfg.Log.Info("User preferences updated", "id", id)
	return user, nil
}

func (s *userService) FindByID(ctx context.Context, id string) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) wishlistError(id string, err error) error {
	if errors.Is(err, userserrors.ErrNotFound) || errors.Is(err, userserrors.ErrInvalidID) {
		return apperrors.NotFound("User")
	}
	s.cfg.Log.Error("Failed to update wishlist", "user", id, "error", err)
	return apperrors.Internal(err.Error(), err)
}

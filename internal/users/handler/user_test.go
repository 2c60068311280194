package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"voyago/internal/auth"
	apperrors "voyago/pkg/errors"
	"voyago/pkg/logger"
	"voyago/pkg/model"
)

type mockUserService struct {
	signupFunc             func(ctx context.Context, req *model.SignupRequest) (*model.User, error)
	loginFunc              func(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	getProfileFunc         func(ctx context.Context, id string) (*model.User, error)
	updateProfileFunc      func(ctx context.Context, id string, patch *model.UserUpdate) (*model.User, error)
	deleteProfileFunc      func(ctx context.Context, id string) error
	addToWishlistFunc      func(ctx context.Context, id string, item primitive.ObjectID) (*model.User, error)
	removeFromWishlistFunc func(ctx context.Context, id string, item primitive.ObjectID) (*model.User, error)
	updatePreferencesFunc  func(ctx context.Context, id string, patch *model.PreferencesUpdate) (*model.User, error)
}

func (m *mockUserService) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	if m.signupFunc != nil {
		return m.signupFunc(ctx, req)
	}
	return &model.User{ID: primitive.NewObjectID(), Name: req.Name, Email: req.Email, Type: model.RoleUser}, nil
}

func (m *mockUserService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return &model.LoginResponse{Token: "token", User: &model.User{Email: req.Email}}, nil
}

func (m *mockUserService) GetProfile(ctx context.Context, id string) (*model.User, error) {
	if m.getProfileFunc != nil {
		return m.getProfileFunc(ctx, id)
	}
	return &model.User{ID: primitive.NewObjectID()}, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id string, patch *model.UserUpdate) (*model.User, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, id, patch)
	}
	return &model.User{}, nil
}

func (m *mockUserService) DeleteProfile(ctx context.Context, id string) error {
	if m.deleteProfileFunc != nil {
		return m.deleteProfileFunc(ctx, id)
	}
	return nil
}

func (m *mockUserService) AddToWishlist(ctx context.Context, id string, item primitive.ObjectID) (*model.User, error) {
	if m.addToWishlistFunc != nil {
		return m.addToWishlistFunc(ctx, id, item)
	}
	return &model.User{Wishlist: []primitive.ObjectID{item}}, nil
}

func (m *mockUserService) RemoveFromWishlist(ctx context.Context, id string, item primitive.ObjectID) (*model.User, error) {
	if m.removeFromWishlistFunc != nil {
		return m.removeFromWishlistFunc(ctx, id, item)
	}
	return &model.User{}, nil
}

func (m *mockUserService) UpdatePreferences(ctx context.Context, id string, patch *model.PreferencesUpdate) (*model.User, error) {
	if m.updatePreferencesFunc != nil {
		return m.updatePreferencesFunc(ctx, id, patch)
	}
	return &model.User{}, nil
}

func (m *mockUserService) FindByID(ctx context.Context, id string) (*model.User, error) {
	return &model.User{ID: primitive.NewObjectID(), Type: model.RoleUser}, nil
}

type testHarness struct {
	router *httprouter.Router
	token  string
}

func newHarness(t *testing.T, svc *mockUserService) *testHarness {
	t.Helper()

	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})

	tm := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tm.Issue(primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	gate := auth.NewGate(tm, svc, log)

	router := httprouter.New()
	NewUserHandler(svc, gate, log).RegisterRoutes(router)

	return &testHarness{router: router, token: token}
}

func (h *testHarness) do(method, path string, body []byte, withToken bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if withToken {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body.Message
}

func TestSignup(t *testing.T) {
	h := newHarness(t, &mockUserService{})

	payload, _ := json.Marshal(map[string]any{
		"name":     "Rahim Uddin",
		"email":    "rahim@example.com",
		"password": "secret123",
	})

	rec := h.do(http.MethodPost, "/api/users/signup", payload, false)
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var user model.User
	if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if user.Email != "rahim@example.com" {
		t.Errorf("email = %q", user.Email)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := &mockUserService{
		signupFunc: func(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
			return nil, apperrors.Conflict("Email already in use")
		},
	}
	h := newHarness(t, svc)

	payload, _ := json.Marshal(map[string]any{
		"name":     "Rahim Uddin",
		"email":    "rahim@example.com",
		"password": "secret123",
	})

	rec := h.do(http.MethodPost, "/api/users/signup", payload, false)
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if got := decodeMessage(t, rec); got != "Email already in use" {
		t.Errorf("message = %q", got)
	}
}

func TestSignup_InvalidBody(t *testing.T) {
	h := newHarness(t, &mockUserService{})

	rec := h.do(http.MethodPost, "/api/users/signup", []byte(`{not json`), false)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := decodeMessage(t, rec); got != "Invalid request body" {
		t.Errorf("message = %q", got)
	}
}

func TestLogin(t *testing.T) {
	h := newHarness(t, &mockUserService{})

	payload, _ := json.Marshal(map[string]any{
		"email":    "rahim@example.com",
		"password": "secret123",
	})

	rec := h.do(http.MethodPost, "/api/users/login", payload, false)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token in the response")
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := &mockUserService{
		loginFunc: func(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
			return nil, apperrors.Unauthorized("Invalid email or password")
		},
	}
	h := newHarness(t, svc)

	payload, _ := json.Marshal(map[string]any{
		"email":    "rahim@example.com",
		"password": "wrong",
	})

	rec := h.do(http.MethodPost, "/api/users/login", payload, false)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if got := decodeMessage(t, rec); got != "Invalid email or password" {
		t.Errorf("message = %q", got)
	}
}

func TestLogout(t *testing.T) {
	h := newHarness(t, &mockUserService{})

	rec := h.do(http.MethodPost, "/api/users/logout", nil, false)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := decodeMessage(t, rec); got != "Logged out successfully" {
		t.Errorf("message = %q", got)
	}
}

func TestGetProfile_RequiresToken(t *testing.T) {
	h := newHarness(t, &mockUserService{})

	rec := h.do(http.MethodGet, "/api/users/id/"+primitive.NewObjectID().Hex(), nil, false)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if got := decodeMessage(t, rec); got != "Access denied. No token provided." {
		t.Errorf("message = %q", got)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := &mockUserService{
		getProfileFunc: func(ctx context.Context, id string) (*model.User, error) {
			return nil, apperrors.NotFound("User")
		},
	}
	h := newHarness(t, svc)

	rec := h.do(http.MethodGet, "/api/users/id/ffffffffffffffffffffffff", nil, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := decodeMessage(t, rec); got != "User not found" {
		t.Errorf("message = %q", got)
	}
}

func TestUpdateProfile_PassesPatch(t *testing.T) {
	var gotPatch *model.UserUpdate
	svc := &mockUserService{
		updateProfileFunc: func(ctx context.Context, id string, patch *model.UserUpdate) (*model.User, error) {
			gotPatch = patch
			return &model.User{}, nil
		},
	}
	h := newHarness(t, svc)

	rec := h.do(http.MethodPut, "/api/users/id/"+primitive.NewObjectID().Hex(), []byte(`{"address":"Dhanmondi, Dhaka"}`), true)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if gotPatch == nil || gotPatch.Address == nil || *gotPatch.Address != "Dhanmondi, Dhaka" {
		t.Errorf("patch = %+v, want address set", gotPatch)
	}
	if gotPatch != nil && gotPatch.Name != nil {
		t.Errorf("name should be absent from the patch, got %q", *gotPatch.Name)
	}
}

func TestDeleteProfile(t *testing.T) {
	h := newHarness(t, &mockUserService{})

	rec := h.do(http.MethodDelete, "/api/users/id/"+primitive.NewObjectID().Hex(), nil, true)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := decodeMessage(t, rec); got != "User deleted successfully" {
		t.Errorf("message = %q", got)
	}
}

func TestAddToWishlist(t *testing.T) {
	item := primitive.NewObjectID()
	var gotItem primitive.ObjectID
	svc := &mockUserService{
		addToWishlistFunc: func(ctx context.Context, id string, wish primitive.ObjectID) (*model.User, error) {
			gotItem = wish
			return &model.User{Wishlist: []primitive.ObjectID{wish}}, nil
		},
	}
	h := newHarness(t, svc)

	payload, _ := json.Marshal(map[string]any{"item": item.Hex()})
	rec := h.do(http.MethodPost, "/api/users/id/"+primitive.NewObjectID().Hex()+"/wishlist", payload, true)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if gotItem != item {
		t.Errorf("item = %s, want %s", gotItem.Hex(), item.Hex())
	}
}

func TestUpdatePreferences(t *testing.T) {
	var gotPatch *model.PreferencesUpdate
	svc := &mockUserService{
		updatePreferencesFunc: func(ctx context.Context, id string, patch *model.PreferencesUpdate) (*model.User, error) {
			gotPatch = patch
			return &model.User{}, nil
		},
	}
	h := newHarness(t, svc)

	rec := h.do(http.MethodPut, "/api/users/id/"+primitive.NewObjectID().Hex()+"/preferences", []byte(`{"currencyPreference":"USD"}`), true)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	if gotPatch == nil || gotPatch.CurrencyPreference == nil || *gotPatch.CurrencyPreference != "USD" {
		t.Errorf("patch = %+v, want currencyPreference set", gotPatch)
	}
	if gotPatch != nil && gotPatch.LanguagePreference != nil {
		t.Errorf("languagePreference should be absent from the patch, got %q", *gotPatch.LanguagePreference)
	}
}

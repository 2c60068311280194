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

type mockBookingService struct {
	createFunc    func(ctx context.Context, booking *model.Booking) error
	getAllFunc    func(ctx context.Context) ([]*model.PopulatedBooking, error)
	getByUserFunc func(ctx context.Context, userID string) ([]*model.PopulatedBooking, error)
	cancelFunc    func(ctx context.Context, id string) (*model.Booking, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = primitive.NewObjectID()
	return nil
}

func (m *mockBookingService) GetAll(ctx context.Context) ([]*model.PopulatedBooking, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []*model.PopulatedBooking{}, nil
}

func (m *mockBookingService) GetByUser(ctx context.Context, userID string) ([]*model.PopulatedBooking, error) {
	if m.getByUserFunc != nil {
		return m.getByUserFunc(ctx, userID)
	}
	return []*model.PopulatedBooking{}, nil
}

func (m *mockBookingService) Cancel(ctx context.Context, id string) (*model.Booking, error) {
	if m.cancelFunc != nil {
		return m.cancelFunc(ctx, id)
	}
	return &model.Booking{Status: model.BookingStatusCancelled}, nil
}

type stubResolver struct {
	user *model.User
}

func (s *stubResolver) FindByID(ctx context.Context, id string) (*model.User, error) {
	return s.user, nil
}

type testHarness struct {
	router *httprouter.Router
	token  string
}

func newHarness(t *testing.T, svc *mockBookingService, userType string) *testHarness {
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

	gate := auth.NewGate(tm, &stubResolver{user: &model.User{Type: userType}}, log)

	router := httprouter.New()
	NewBookingHandler(svc, gate, log).RegisterRoutes(router)

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

func TestCreateBooking(t *testing.T) {
	h := newHarness(t, &mockBookingService{}, model.RoleUser)

	payload, _ := json.Marshal(map[string]any{
		"user":       primitive.NewObjectID().Hex(),
		"type":       "flight",
		"flight":     primitive.NewObjectID().Hex(),
		"startDate":  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"totalPrice": 350,
	})

	rec := h.do(http.MethodPost, "/api/bookings", payload, true)
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestCreateBooking_RequiresToken(t *testing.T) {
	h := newHarness(t, &mockBookingService{}, model.RoleUser)

	rec := h.do(http.MethodPost, "/api/bookings", []byte(`{}`), false)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if got := decodeMessage(t, rec); got != "Access denied. No token provided." {
		t.Errorf("message = %q", got)
	}
}

func TestCreateBooking_InvalidBody(t *testing.T) {
	h := newHarness(t, &mockBookingService{}, model.RoleUser)

	rec := h.do(http.MethodPost, "/api/bookings", []byte(`{not json`), true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := decodeMessage(t, rec); got != "Invalid request body" {
		t.Errorf("message = %q", got)
	}
}

func TestCreateBooking_ValidationErrorMessage(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, booking *model.Booking) error {
			return apperrors.Validation("Hotel ID is required for hotel booking")
		},
	}
	h := newHarness(t, svc, model.RoleUser)

	rec := h.do(http.MethodPost, "/api/bookings", []byte(`{"type":"hotel"}`), true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := decodeMessage(t, rec); got != "Hotel ID is required for hotel booking" {
		t.Errorf("message = %q", got)
	}
}

func TestGetAllBookings_AdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		userType   string
		wantStatus int
	}{
		{name: "admin", userType: model.RoleAdmin, wantStatus: http.StatusOK},
		{name: "regular user", userType: model.RoleUser, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, &mockBookingService{}, tt.userType)

			rec := h.do(http.MethodGet, "/api/bookings", nil, true)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusForbidden {
				if got := decodeMessage(t, rec); got != "Access denied. Insufficient permissions." {
					t.Errorf("message = %q", got)
				}
			}
		})
	}
}

func TestGetBookingsByUser(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	svc := &mockBookingService{
		getByUserFunc: func(ctx context.Context, id string) ([]*model.PopulatedBooking, error) {
			if id != userID {
				t.Errorf("expected user id %q, got %q", userID, id)
			}
			return []*model.PopulatedBooking{{ID: primitive.NewObjectID()}}, nil
		},
	}
	h := newHarness(t, svc, model.RoleUser)

	rec := h.do(http.MethodGet, "/api/bookings/user/"+userID, nil, true)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestCancelBooking(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &mockBookingService{
		cancelFunc: func(ctx context.Context, hex string) (*model.Booking, error) {
			if hex != id.Hex() {
				t.Errorf("expected id %q, got %q", id.Hex(), hex)
			}
			return &model.Booking{ID: id, Status: model.BookingStatusCancelled}, nil
		},
	}
	h := newHarness(t, svc, model.RoleUser)

	rec := h.do(http.MethodPut, "/api/bookings/id/"+id.Hex()+"/cancel", nil, true)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var booking model.Booking
	if err := json.NewDecoder(rec.Body).Decode(&booking); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if booking.Status != model.BookingStatusCancelled {
		t.Errorf("status = %q, want %q", booking.Status, model.BookingStatusCancelled)
	}
}

func TestCancelBooking_NotFound(t *testing.T) {
	svc := &mockBookingService{
		cancelFunc: func(ctx context.Context, id string) (*model.Booking, error) {
			return nil, apperrors.NotFound("Booking")
		},
	}
	h := newHarness(t, svc, model.RoleUser)

	rec := h.do(http.MethodPut, "/api/bookings/id/ffffffffffffffffffffffff/cancel", nil, true)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := decodeMessage(t, rec); got != "Booking not found" {
		t.Errorf("message = %q", got)
	}
}

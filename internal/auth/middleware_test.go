package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"voyago/pkg/logger"
	"voyago/pkg/model"
)

type stubResolver struct {
	user *model.User
	err  error
}

func (s *stubResolver) FindByID(ctx context.Context, id string) (*model.User, error) {
	return s.user, s.err
}

func testGate(resolver UserResolver, tm *TokenManager) *Gate {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewGate(tm, resolver, log)
}

func okHandler(t *testing.T) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if UserFrom(r.Context()) == nil {
			t.Error("expected authenticated user in context")
		}
		w.WriteHeader(http.StatusOK)
	}
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

func TestAuthenticate(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	user := &model.User{Name: "Ana", Type: model.RoleUser}

	validToken, err := tm.Issue("66b1f0a2c9e77c0012345678")
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		authHeader  string
		resolver    UserResolver
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no token",
			authHeader:  "",
			resolver:    &stubResolver{user: user},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access denied. No token provided.",
		},
		{
			name:        "malformed header",
			authHeader:  "Token abc",
			resolver:    &stubResolver{user: user},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access denied. No token provided.",
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer not-a-token",
			resolver:    &stubResolver{user: user},
			wantStatus:  http.StatusForbidden,
			wantMessage: "Invalid or expired token.",
		},
		{
			name:        "valid token for missing user",
			authHeader:  "Bearer " + validToken,
			resolver:    &stubResolver{err: context.DeadlineExceeded},
			wantStatus:  http.StatusForbidden,
			wantMessage: "Invalid token. User not found.",
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + validToken,
			resolver:   &stubResolver{user: user},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := testGate(tt.resolver, tm)
			handle := gate.Authenticate(okHandler(t))

			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handle(rec, req, nil)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantMessage != "" {
				if got := decodeMessage(t, rec); got != tt.wantMessage {
					t.Errorf("message = %q, want %q", got, tt.wantMessage)
				}
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	tests := []struct {
		name       string
		userType   string
		roles      []string
		wantStatus int
	}{
		{name: "admin allowed", userType: model.RoleAdmin, roles: []string{model.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "user rejected from admin route", userType: model.RoleUser, roles: []string{model.RoleAdmin}, wantStatus: http.StatusForbidden},
		{name: "user allowed on user route", userType: model.RoleUser, roles: []string{model.RoleUser, model.RoleAdmin}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := testGate(&stubResolver{}, tm)
			handle := gate.RequireRoles(tt.roles...)(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
			req = req.WithContext(WithUser(req.Context(), &model.User{Type: tt.userType}))
			rec := httptest.NewRecorder()

			handle(rec, req, nil)

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

func TestRequireRoles_NoUserInContext(t *testing.T) {
	gate := testGate(&stubResolver{}, NewTokenManager("test-secret", time.Hour))
	handle := gate.RequireRoles(model.RoleAdmin)(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Error("handler should not run without a user")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()

	handle(rec, req, nil)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

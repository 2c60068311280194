package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voyago/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestContentTypeValidation(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := ContentTypeValidation(testLogger())(next)

	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		wantStatus  int
	}{
		{
			name:        "json post accepted",
			method:      http.MethodPost,
			contentType: "application/json",
			body:        `{"a":1}`,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "json with charset accepted",
			method:      http.MethodPost,
			contentType: "application/json; charset=utf-8",
			body:        `{"a":1}`,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "text post rejected",
			method:      http.MethodPost,
			contentType: "text/plain",
			body:        "hello",
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:       "body-less put passes without content type",
			method:     http.MethodPut,
			wantStatus: http.StatusOK,
		},
		{
			name:       "get ignores content type",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, "/api/bookings", strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, "/api/bookings", nil)
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := Recovery(testLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if body := rec.Body.String(); body != `{"message":"Internal server error"}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		handler := CORS([]string{"*"})(next)

		req := httptest.NewRequest(http.MethodGet, "/api/flights", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
		}
	})

	t.Run("allow-list echoes known origin", func(t *testing.T) {
		handler := CORS([]string{"https://app.example.com"})(next)

		req := httptest.NewRequest(http.MethodGet, "/api/flights", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q", got)
		}
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		handler := CORS([]string{"https://app.example.com"})(next)

		req := httptest.NewRequest(http.MethodGet, "/api/flights", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		handler := CORS([]string{"*"})(next)

		req := httptest.NewRequest(http.MethodOptions, "/api/flights", nil)
		req.Header.Set("Origin", "https://example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
	})
}

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	httputil "voyago/pkg/http"
	"voyago/pkg/logger"
	"voyago/pkg/model"
)

type contextKey string

const userContextKey contextKey = "auth_user"

// UserResolver looks up the account a verified token points at.
type UserResolver interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// Gate composes the two authorization checks routes opt into: bearer-token
// authentication and role membership. They are orthogonal; a route may use
// zero, one, or both.
type Gate struct {
	tokens *TokenManager
	users  UserResolver
	log    *logger.Logger
}

func NewGate(tokens *TokenManager, users UserResolver, log *logger.Logger) *Gate {
	return &Gate{
		tokens: tokens,
		users:  users,
		log:    log,
	}
}

// Authenticate verifies the bearer token, resolves it to an existing user,
// and attaches that user to the request context.
func (g *Gate) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		token := extractBearerToken(r)
		if token == "" {
			writeAuthError(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		userID, err := g.tokens.Verify(token)
		if err != nil {
			writeAuthError(w, http.StatusForbidden, "Invalid or expired token.")
			return
		}

		user, err := g.users.FindByID(r.Context(), userID)
		if err != nil || user == nil {
			writeAuthError(w, http.StatusForbidden, "Invalid token. User not found.")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireRoles rejects requests whose authenticated user's type is not in the
// allow-list. Must run after Authenticate.
func (g *Gate) RequireRoles(roles ...string) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			user := UserFrom(r.Context())
			if user == nil || !contains(roles, user.Type) {
				writeAuthError(w, http.StatusForbidden, "Access denied. Insufficient permissions.")
				return
			}
			next(w, r, ps)
		}
	}
}

// UserFrom returns the authenticated user attached by Authenticate, or nil.
func UserFrom(ctx context.Context) *model.User {
	if user, ok := ctx.Value(userContextKey).(*model.User); ok {
		return user
	}
	return nil
}

// WithUser returns a context carrying the given user. Test helper.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	_ = httputil.WriteJSON(w, status, httputil.ErrorResponse{Message: message})
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

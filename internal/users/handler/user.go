package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"voyago/internal/auth"
	"voyago/internal/users/service"
	httputil "voyago/pkg/http"
	"voyago/pkg/logger"
	"voyago/pkg/model"
)

type UserHandler struct {
	service service.UserService
	gate    *auth.Gate
	log     *logger.Logger
}

func NewUserHandler(service service.UserService, gate *auth.Gate, log *logger.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		gate:    gate,
		log:     log,
	}
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadBody(w, "Signup")
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Signup", err)
		return
	}

	if err := httputil.WriteCreated(w, user); err != nil {
		h.log.Error("failed to write created response", "handler", "Signup", "error", err)
	}
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadBody(w, "Login")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Login", err)
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "error", err)
	}
}

// Logout exists for client symmetry. Tokens are stateless; the client drops
// its copy.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteMessage(w, "Logged out successfully"); err != nil {
		h.log.Error("failed to write message response", "handler", "Logout", "error", err)
	}
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := h.service.GetProfile(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetProfile", err)
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "GetProfile", "error", err)
	}
}

func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch model.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.writeBadBody(w, "UpdateProfile")
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), ps.ByName("id"), &patch)
	if err != nil {
		h.writeError(w, "UpdateProfile", err)
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateProfile", "error", err)
	}
}

func (h *UserHandler) DeleteProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.DeleteProfile(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "DeleteProfile", err)
		return
	}

	if err := httputil.WriteMessage(w, "User deleted successfully"); err != nil {
		h.log.Error("failed to write message response", "handler", "DeleteProfile", "error", err)
	}
}

func (h *UserHandler) AddToWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadBody(w, "AddToWishlist")
		return
	}

	user, err := h.service.AddToWishlist(r.Context(), ps.ByName("id"), req.Item)
	if err != nil {
		h.writeError(w, "AddToWishlist", err)
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "AddToWishlist", "error", err)
	}
}

func (h *UserHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeBadBody(w, "RemoveFromWishlist")
		return
	}

	user, err := h.service.RemoveFromWishlist(r.Context(), ps.ByName("id"), req.Item)
	if err != nil {
		h.writeError(w, "RemoveFromWishlist", err)
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "RemoveFromWishlist", "error", err)
	}
}

func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch model.PreferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.writeBadBody(w, "UpdatePreferences")
		return
	}

	user, err := h.service.UpdatePreferences(r.Context(), ps.ByName("id"), &patch)
	if err != nil {
		h.writeError(w, "UpdatePreferences", err)
		return
	}

	if err := httputil.WriteSuccess(w, user); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdatePreferences", "error", err)
	}
}

func (h *UserHandler) writeBadBody(w http.ResponseWriter, handlerName string) {
	if err := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
		Message: "Invalid request body",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", handlerName, "error", err)
	}
}

func (h *UserHandler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}

// RegisterRoutes wires the account surface. Signup, login and logout are
// public; profile, wishlist and preference routes require a token.
func (h *UserHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/users/signup", h.Signup)
	router.POST("/api/users/login", h.Login)
	router.POST("/api/users/logout", h.Logout)
	router.GET("/api/users/id/:id", h.gate.Authenticate(h.GetProfile))
	router.PUT("/api/users/id/:id", h.gate.Authenticate(h.UpdateProfile))
	router.DELETE("/api/users/id/:id", h.gate.Authenticate(h.DeleteProfile))
	router.POST("/api/users/id/:id/wishlist", h.gate.Authenticate(h.AddToWishlist))
	router.DELETE("/api/users/id/:id/wishlist", h.gate.Authenticate(h.RemoveFromWishlist))
	router.PUT("/api/users/id/:id/preferences", h.gate.Authenticate(h.UpdatePreferences))
}

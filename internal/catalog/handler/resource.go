package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"voyago/internal/auth"
	"voyago/internal/catalog/repository"
	"voyago/internal/catalog/service"
	httputil "voyago/pkg/http"
	"voyago/pkg/logger"
	"voyago/pkg/model"
)

// ResourceHandler serves one catalog collection under a fixed path prefix.
// Reads are public; writes require an admin token.
type ResourceHandler[T any, PT repository.Entity[T], U any, PU model.PatchFor[T, U]] struct {
	name    string
	prefix  string
	service service.ResourceService[T, PT]
	gate    *auth.Gate
	log     *logger.Logger
}

func NewResourceHandler[T any, PT repository.Entity[T], U any, PU model.PatchFor[T, U]](
	name string,
	prefix string,
	svc service.ResourceService[T, PT],
	gate *auth.Gate,
	log *logger.Logger,
) *ResourceHandler[T, PT, U, PU] {
	return &ResourceHandler[T, PT, U, PU]{
		name:    name,
		prefix:  prefix,
		service: svc,
		gate:    gate,
		log:     log,
	}
}

func (h *ResourceHandler[T, PT, U, PU]) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var doc T
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Message: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "resource", h.name, "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), PT(&doc)); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "resource", h.name, "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, &doc); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "resource", h.name, "error", err)
	}
}

func (h *ResourceHandler[T, PT, U, PU]) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	docs, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "resource", h.name, "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, docs); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "resource", h.name, "error", err)
	}
}

func (h *ResourceHandler[T, PT, U, PU]) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	doc, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "resource", h.name, "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, doc); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "resource", h.name, "error", err)
	}
}

func (h *ResourceHandler[T, PT, U, PU]) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch U
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Message: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "resource", h.name, "error", writeErr)
		}
		return
	}

	doc, err := h.service.Update(r.Context(), ps.ByName("id"), PU(&patch))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "resource", h.name, "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, doc); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "resource", h.name, "error", err)
	}
}

func (h *ResourceHandler[T, PT, U, PU]) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "resource", h.name, "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, fmt.Sprintf("%s deleted successfully", h.name)); err != nil {
		h.log.Error("failed to write message response", "handler", "Delete", "resource", h.name, "error", err)
	}
}

// RegisterRoutes mounts the collection under its prefix. Item routes live
// under /id/ to match the rest of the API surface.
func (h *ResourceHandler[T, PT, U, PU]) RegisterRoutes(router *httprouter.Router) {
	admin := func(next httprouter.Handle) httprouter.Handle {
		return h.gate.Authenticate(h.gate.RequireRoles(model.RoleAdmin)(next))
	}

	router.GET(h.prefix, h.GetAll)
	router.GET(h.prefix+"/id/:id", h.GetByID)
	router.POST(h.prefix, admin(h.Create))
	router.PUT(h.prefix+"/id/:id", admin(h.Update))
	router.DELETE(h.prefix+"/id/:id", admin(h.Delete))
}

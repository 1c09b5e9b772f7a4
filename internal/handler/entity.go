package handler

import (
	"context"
	"fmt"
	"net/http"
)

// EntityOperations is the service contract the generic handler serves.
type EntityOperations[T any] interface {
	ListAll(ctx context.Context) []*T
	GetByID(ctx context.Context, id string) (*T, error)
	GetByName(ctx context.Context, name string) (*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	SaveForID(ctx context.Context, id string, entity *T) (*T, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int, error)
}

// EntityHandler serves the REST surface for one entity family. All families
// share the same shape; only the route prefix and service differ.
type EntityHandler[T any] struct {
	service EntityOperations[T]
}

// NewEntityHandler creates a handler for one entity family.
func NewEntityHandler[T any](service EntityOperations[T]) *EntityHandler[T] {
	return &EntityHandler[T]{service: service}
}

// Register mounts the family's routes under the given plural prefix, e.g.
// "/v1/areas".
func (h *EntityHandler[T]) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc(fmt.Sprintf("GET %s", prefix), h.List)
	mux.HandleFunc(fmt.Sprintf("POST %s", prefix), h.Create)
	mux.HandleFunc(fmt.Sprintf("DELETE %s", prefix), h.DeleteAll)
	mux.HandleFunc(fmt.Sprintf("GET %s/name/{name}", prefix), h.GetByName)
	mux.HandleFunc(fmt.Sprintf("GET %s/{id}", prefix), h.Get)
	mux.HandleFunc(fmt.Sprintf("PUT %s/{id}", prefix), h.Save)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/{id}", prefix), h.Delete)
}

// List handles GET /v1/<family>
func (h *EntityHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	records := h.service.ListAll(r.Context())
	WriteCollection(w, http.StatusOK, records, len(records))
}

// Get handles GET /v1/<family>/{id}
func (h *EntityHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, record)
}

// GetByName handles GET /v1/<family>/name/{name}
func (h *EntityHandler[T]) GetByName(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, record)
}

// Create handles POST /v1/<family>
func (h *EntityHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	var entity T
	if err := DecodeJSON(r, &entity); err != nil {
		WriteError(w, MapDecodeError(err))
		return
	}

	created, err := h.service.Create(r.Context(), &entity)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusCreated, created)
}

// Save handles PUT /v1/<family>/{id}
func (h *EntityHandler[T]) Save(w http.ResponseWriter, r *http.Request) {
	var entity T
	if err := DecodeJSON(r, &entity); err != nil {
		WriteError(w, MapDecodeError(err))
		return
	}

	saved, err := h.service.SaveForID(r.Context(), r.PathValue("id"), &entity)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, saved)
}

// Delete handles DELETE /v1/<family>/{id}
func (h *EntityHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteByID(r.Context(), r.PathValue("id")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteNoContent(w)
}

// DeleteAll handles DELETE /v1/<family>
func (h *EntityHandler[T]) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteAll(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteJSON(w, http.StatusOK, DeletedResponse{Deleted: deleted})
}

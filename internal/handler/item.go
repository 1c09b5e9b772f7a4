package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/forgo/worldforge/api/internal/model"
)

// ItemOperations adds the vnum lookup to the shared entity surface.
type ItemOperations interface {
	EntityOperations[model.Item]
	GetByVnum(ctx context.Context, vnum int) (*model.Item, error)
}

// ItemHandler serves items, including lookup by vnum.
type ItemHandler struct {
	*EntityHandler[model.Item]
	service ItemOperations
}

// NewItemHandler creates the item handler.
func NewItemHandler(service ItemOperations) *ItemHandler {
	return &ItemHandler{
		EntityHandler: NewEntityHandler[model.Item](service),
		service:       service,
	}
}

// Register mounts the item routes.
func (h *ItemHandler) Register(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("GET "+prefix+"/vnum/{vnum}", h.GetByVnum)
	h.EntityHandler.Register(mux, prefix)
}

// GetByVnum handles GET /v1/items/vnum/{vnum}
func (h *ItemHandler) GetByVnum(w http.ResponseWriter, r *http.Request) {
	vnum, err := strconv.Atoi(r.PathValue("vnum"))
	if err != nil {
		WriteError(w, model.NewBadRequestError("vnum must be an integer"))
		return
	}

	item, err := h.service.GetByVnum(r.Context(), vnum)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, item)
}

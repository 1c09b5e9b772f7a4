package service

import (
	"context"
	"log/slog"

	"github.com/forgo/worldforge/api/internal/model"
	"github.com/forgo/worldforge/api/internal/resilience"
)

// OwnedService is an EntityService for a family whose records carry an
// owning reference (rooms, shops, mobiles, resets, and specials belong to an
// area; characters belong to a player). Creation requires the reference to
// be present. It is never checked for existence: a dangling reference is
// tolerated and cleaned up reactively when the owner is deleted.
type OwnedService[T any] struct {
	*EntityService[T]
	ownerField string
	owner      func(*T) string
}

func newOwnedService[T any](entity, ownerField string, owner func(*T) string, cfg EntityServiceConfig[T]) *OwnedService[T] {
	cfg.Entity = entity
	return &OwnedService[T]{
		EntityService: NewEntityService(cfg),
		ownerField:    ownerField,
		owner:         owner,
	}
}

// Create persists a new record after checking the owning reference.
func (s *OwnedService[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := s.guardEntity(entity); err != nil {
		return nil, err
	}
	if err := RequireText(s.owner(entity), model.NewInvalidRequest(s.entity, s.ownerField+" is required")); err != nil {
		return nil, err
	}
	return s.EntityService.Create(ctx, entity)
}

// NewRoomService creates the room entity service.
func NewRoomService(repo Repository[model.Room], state *resilience.State, logger *slog.Logger) *OwnedService[model.Room] {
	return newOwnedService("room", "area_id",
		func(r *model.Room) string { return r.AreaID },
		EntityServiceConfig[model.Room]{
			Repo:   repo,
			State:  state,
			ID:     func(r *model.Room) string { return r.ID },
			Logger: logger,
		})
}

// NewMobileService creates the mobile entity service.
func NewMobileService(repo Repository[model.Mobile], state *resilience.State, logger *slog.Logger) *OwnedService[model.Mobile] {
	return newOwnedService("mobile", "area_id",
		func(m *model.Mobile) string { return m.AreaID },
		EntityServiceConfig[model.Mobile]{
			Repo:   repo,
			State:  state,
			ID:     func(m *model.Mobile) string { return m.ID },
			Logger: logger,
		})
}

// NewShopService creates the shop entity service.
func NewShopService(repo Repository[model.Shop], state *resilience.State, logger *slog.Logger) *OwnedService[model.Shop] {
	return newOwnedService("shop", "area_id",
		func(sh *model.Shop) string { return sh.AreaID },
		EntityServiceConfig[model.Shop]{
			Repo:   repo,
			State:  state,
			ID:     func(sh *model.Shop) string { return sh.ID },
			Logger: logger,
		})
}

// NewResetService creates the reset entity service.
func NewResetService(repo Repository[model.Reset], state *resilience.State, logger *slog.Logger) *OwnedService[model.Reset] {
	return newOwnedService("reset", "area_id",
		func(r *model.Reset) string { return r.AreaID },
		EntityServiceConfig[model.Reset]{
			Repo:   repo,
			State:  state,
			ID:     func(r *model.Reset) string { return r.ID },
			Logger: logger,
		})
}

// NewSpecialService creates the special entity service.
func NewSpecialService(repo Repository[model.Special], state *resilience.State, logger *slog.Logger) *OwnedService[model.Special] {
	return newOwnedService("special", "area_id",
		func(sp *model.Special) string { return sp.AreaID },
		EntityServiceConfig[model.Special]{
			Repo:   repo,
			State:  state,
			ID:     func(sp *model.Special) string { return sp.ID },
			Logger: logger,
		})
}

package service

import (
	"context"
	"log/slog"

	"github.com/forgo/worldforge/api/internal/events"
	"github.com/forgo/worldforge/api/internal/model"
	"github.com/forgo/worldforge/api/internal/resilience"
)

// AreaService manages areas. On top of the shared contract it publishes one
// AreaDeleted event per removed area, after the store has acknowledged the
// delete, so dependent collections can purge themselves without the area
// module knowing about them.
type AreaService struct {
	*EntityService[model.Area]
	bus *events.Bus
}

// AreaServiceConfig configures an AreaService.
type AreaServiceConfig struct {
	Repo   Repository[model.Area]
	State  *resilience.State
	Bus    *events.Bus
	Logger *slog.Logger
}

// NewAreaService creates the area service.
func NewAreaService(cfg AreaServiceConfig) *AreaService {
	base := NewEntityService(EntityServiceConfig[model.Area]{
		Entity: "area",
		Repo:   cfg.Repo,
		State:  cfg.State,
		ID:     func(a *model.Area) string { return a.ID },
		Logger: cfg.Logger,
	})
	return &AreaService{EntityService: base, bus: cfg.Bus}
}

// Create persists a new area. The name is required on top of the shared
// entity and ID guards.
func (s *AreaService) Create(ctx context.Context, area *model.Area) (*model.Area, error) {
	if err := s.guardEntity(area); err != nil {
		return nil, err
	}
	if err := RequireText(area.Name, model.NewInvalidRequest("area", "area name is required")); err != nil {
		return nil, err
	}
	return s.EntityService.Create(ctx, area)
}

// DeleteByID removes one area and announces the deletion. If the process
// dies between the store delete and the publish, dependent records stay
// behind; the event is not persisted or replayed.
func (s *AreaService) DeleteByID(ctx context.Context, id string) error {
	if err := s.EntityService.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(ctx, events.AreaDeleted{AreaID: id})
	return nil
}

// DeleteAll removes every area, returning the pre-deletion count and
// announcing each removed area individually so every dependent purge runs
// per area ID.
func (s *AreaService) DeleteAll(ctx context.Context) (int, error) {
	areas, err := resilience.Execute(ctx, s.state, func(ctx context.Context) ([]*model.Area, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return 0, model.NewPersistenceUnavailable("area", "", err)
	}

	count, err := s.EntityService.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	for _, area := range areas {
		s.bus.Publish(ctx, events.AreaDeleted{AreaID: area.ID})
	}
	return count, nil
}

package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/forgo/worldforge/api/internal/model"
	"github.com/forgo/worldforge/api/internal/resilience"
)

// The catalog families (items, classes, races, commands, ruleset tables) use
// the shared contract unchanged. Items additionally support vnum lookup.

// VnumRepository is the item store contract including the vnum index.
type VnumRepository interface {
	Repository[model.Item]
	GetByVnum(ctx context.Context, vnum int) (*model.Item, error)
}

// ItemService manages item templates.
type ItemService struct {
	*EntityService[model.Item]
	repo VnumRepository
}

// NewItemService creates the item entity service.
func NewItemService(repo VnumRepository, state *resilience.State, logger *slog.Logger) *ItemService {
	return &ItemService{
		EntityService: NewEntityService(EntityServiceConfig[model.Item]{
			Entity: "item",
			Repo:   repo,
			State:  state,
			ID:     func(i *model.Item) string { return i.ID },
			Logger: logger,
		}),
		repo: repo,
	}
}

// GetByVnum returns the item template with the given vnum. Like other point
// lookups it is not retried.
func (s *ItemService) GetByVnum(ctx context.Context, vnum int) (*model.Item, error) {
	if vnum <= 0 {
		return nil, model.NewInvalidRequest("item", "vnum must be positive")
	}
	out, err := resilience.Execute(ctx, s.state, func(ctx context.Context) (*model.Item, error) {
		return s.repo.GetByVnum(ctx, vnum)
	})
	if err != nil {
		return nil, model.NewPersistenceUnavailable("item", strconv.Itoa(vnum), err)
	}
	if out == nil {
		return nil, model.NewNotFound("item", strconv.Itoa(vnum))
	}
	return out, nil
}

// NewClassService creates the class entity service.
func NewClassService(repo Repository[model.Class], state *resilience.State, logger *slog.Logger) *EntityService[model.Class] {
	return NewEntityService(EntityServiceConfig[model.Class]{
		Entity: "class",
		Repo:   repo,
		State:  state,
		ID:     func(c *model.Class) string { return c.ID },
		Logger: logger,
	})
}

// NewRaceService creates the race entity service.
func NewRaceService(repo Repository[model.Race], state *resilience.State, logger *slog.Logger) *EntityService[model.Race] {
	return NewEntityService(EntityServiceConfig[model.Race]{
		Entity: "race",
		Repo:   repo,
		State:  state,
		ID:     func(r *model.Race) string { return r.ID },
		Logger: logger,
	})
}

// NewCommandService creates the command entity service.
func NewCommandService(repo Repository[model.Command], state *resilience.State, logger *slog.Logger) *EntityService[model.Command] {
	return NewEntityService(EntityServiceConfig[model.Command]{
		Entity: "command",
		Repo:   repo,
		State:  state,
		ID:     func(c *model.Command) string { return c.ID },
		Logger: logger,
	})
}

// NewGameDataService creates the ruleset table entity service.
func NewGameDataService(repo Repository[model.GameData], state *resilience.State, logger *slog.Logger) *EntityService[model.GameData] {
	return NewEntityService(EntityServiceConfig[model.GameData]{
		Entity: "gamedata",
		Repo:   repo,
		State:  state,
		ID:     func(g *model.GameData) string { return g.ID },
		Logger: logger,
	})
}

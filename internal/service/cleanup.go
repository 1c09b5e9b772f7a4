package service

import (
	"context"
	"log/slog"

	"github.com/forgo/worldforge/api/internal/events"
)

// AreaScopedRepository is the purge contract a cleanup listener needs from
// its own collection.
type AreaScopedRepository interface {
	DeleteByAreaID(ctx context.Context, areaID string) error
}

// CleanupConfig lists the collections purged when an area is deleted.
type CleanupConfig struct {
	Rooms    AreaScopedRepository
	Shops    AreaScopedRepository
	Mobiles  AreaScopedRepository
	Resets   AreaScopedRepository
	Specials AreaScopedRepository
	Logger   *slog.Logger
}

// RegisterCleanupListeners subscribes one listener per dependent collection
// to the AreaDeleted event. Each listener bulk-deletes only its own records;
// the order listeners run in does not matter, and a failing listener is
// logged by the bus without blocking the others or the area deletion itself.
func RegisterCleanupListeners(bus *events.Bus, cfg CleanupConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registerCleanup(bus, "room", cfg.Rooms, logger)
	registerCleanup(bus, "shop", cfg.Shops, logger)
	registerCleanup(bus, "mobile", cfg.Mobiles, logger)
	registerCleanup(bus, "reset", cfg.Resets, logger)
	registerCleanup(bus, "special", cfg.Specials, logger)
}

// PlayerScopedRepository is the purge contract the character cleanup
// listener needs.
type PlayerScopedRepository interface {
	DeleteByPlayerID(ctx context.Context, playerID string) error
}

// RegisterPlayerCleanupListeners subscribes the character purge to the
// PlayerDeleted event.
func RegisterPlayerCleanupListeners(bus *events.Bus, characters PlayerScopedRepository, logger *slog.Logger) {
	if characters == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	bus.Subscribe(events.TypePlayerDeleted, "character-cleanup", func(ctx context.Context, evt events.Event) error {
		deleted, ok := evt.(events.PlayerDeleted)
		if !ok {
			return nil
		}
		if err := characters.DeleteByPlayerID(ctx, deleted.PlayerID); err != nil {
			return err
		}
		logger.Info("purged player-owned characters",
			slog.String("player_id", deleted.PlayerID),
		)
		return nil
	})
}

func registerCleanup(bus *events.Bus, family string, repo AreaScopedRepository, logger *slog.Logger) {
	if repo == nil {
		return
	}
	bus.Subscribe(events.TypeAreaDeleted, family+"-cleanup", func(ctx context.Context, evt events.Event) error {
		deleted, ok := evt.(events.AreaDeleted)
		if !ok {
			return nil
		}
		if err := repo.DeleteByAreaID(ctx, deleted.AreaID); err != nil {
			return err
		}
		logger.Info("purged area-owned records",
			slog.String("family", family),
			slog.String("area_id", deleted.AreaID),
		)
		return nil
	})
}

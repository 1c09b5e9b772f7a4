package service

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/forgo/worldforge/api/internal/events"
	"github.com/forgo/worldforge/api/internal/model"
	"github.com/forgo/worldforge/api/internal/resilience"
)

// PlayerService manages player accounts. Plaintext passwords never reach the
// store: Create hashes them with bcrypt and clears the input field. Deleting
// an account announces it so the character collection can purge the
// account's characters.
type PlayerService struct {
	*EntityService[model.Player]
	bus *events.Bus
}

// PlayerServiceConfig configures a PlayerService.
type PlayerServiceConfig struct {
	Repo   Repository[model.Player]
	State  *resilience.State
	Bus    *events.Bus
	Logger *slog.Logger
}

// NewPlayerService creates the player entity service.
func NewPlayerService(cfg PlayerServiceConfig) *PlayerService {
	return &PlayerService{
		EntityService: NewEntityService(EntityServiceConfig[model.Player]{
			Entity: "player",
			Repo:   cfg.Repo,
			State:  cfg.State,
			ID:     func(p *model.Player) string { return p.ID },
			Logger: cfg.Logger,
		}),
		bus: cfg.Bus,
	}
}

// Create persists a new player account. The name is required, and a supplied
// password is replaced by its bcrypt hash before the record is written.
func (s *PlayerService) Create(ctx context.Context, player *model.Player) (*model.Player, error) {
	if err := s.guardEntity(player); err != nil {
		return nil, err
	}
	if err := RequireText(player.Name, model.NewInvalidRequest("player", "player name is required")); err != nil {
		return nil, err
	}

	if player.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(player.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, model.NewInvalidRequest("player", "password could not be hashed")
		}
		player.PasswordHash = string(hash)
		player.Password = ""
	}

	return s.EntityService.Create(ctx, player)
}

// DeleteByID removes one player account and announces the deletion so the
// account's characters get purged.
func (s *PlayerService) DeleteByID(ctx context.Context, id string) error {
	if err := s.EntityService.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.bus.Publish(ctx, events.PlayerDeleted{PlayerID: id})
	return nil
}

// DeleteAll removes every player account, announcing each one.
func (s *PlayerService) DeleteAll(ctx context.Context) (int, error) {
	players, err := resilience.Execute(ctx, s.state, func(ctx context.Context) ([]*model.Player, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return 0, model.NewPersistenceUnavailable("player", "", err)
	}

	count, err := s.EntityService.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	for _, player := range players {
		s.bus.Publish(ctx, events.PlayerDeleted{PlayerID: player.ID})
	}
	return count, nil
}

// VerifyPassword checks a login attempt against the stored hash.
func (s *PlayerService) VerifyPassword(player *model.Player, password string) bool {
	if player == nil || player.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)) == nil
}

// NewCharacterService creates the character entity service. Characters are
// owned by a player account.
func NewCharacterService(repo Repository[model.Character], state *resilience.State, logger *slog.Logger) *OwnedService[model.Character] {
	return newOwnedService("character", "player_id",
		func(c *model.Character) string { return c.PlayerID },
		EntityServiceConfig[model.Character]{
			Repo:   repo,
			State:  state,
			ID:     func(c *model.Character) string { return c.ID },
			Logger: logger,
		})
}

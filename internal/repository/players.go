package repository

import (
	"context"

	"github.com/forgo/worldforge/api/internal/database"
	"github.com/forgo/worldforge/api/internal/model"
)

// NewPlayerRepository handles player account data access.
func NewPlayerRepository(db database.Database) *Collection[model.Player] {
	return NewCollection[model.Player](db, "player")
}

// CharacterRepository handles character data access.
type CharacterRepository struct {
	*Collection[model.Character]
}

// NewCharacterRepository creates a new character repository.
func NewCharacterRepository(db database.Database) *CharacterRepository {
	return &CharacterRepository{Collection: NewCollection[model.Character](db, "character")}
}

// DeleteByPlayerID purges every character owned by the given player account.
func (r *CharacterRepository) DeleteByPlayerID(ctx context.Context, playerID string) error {
	return r.DeleteByField(ctx, "player_id", playerID)
}

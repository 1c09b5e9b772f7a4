package repository

import (
	"context"

	"github.com/forgo/worldforge/api/internal/database"
	"github.com/forgo/worldforge/api/internal/model"
)

// ItemRepository handles item template data access.
type ItemRepository struct {
	*Collection[model.Item]
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db database.Database) *ItemRepository {
	return &ItemRepository{Collection: NewCollection[model.Item](db, "item")}
}

// GetByVnum retrieves an item template by its vnum.
func (r *ItemRepository) GetByVnum(ctx context.Context, vnum int) (*model.Item, error) {
	return r.GetByField(ctx, "vnum", vnum)
}

// NewClassRepository handles class data access.
func NewClassRepository(db database.Database) *Collection[model.Class] {
	return NewCollection[model.Class](db, "class")
}

// NewRaceRepository handles race data access.
func NewRaceRepository(db database.Database) *Collection[model.Race] {
	return NewCollection[model.Race](db, "race")
}

// NewCommandRepository handles command data access.
func NewCommandRepository(db database.Database) *Collection[model.Command] {
	return NewCollection[model.Command](db, "command")
}

// NewGameDataRepository handles ruleset table data access.
func NewGameDataRepository(db database.Database) *Collection[model.GameData] {
	return NewCollection[model.GameData](db, "gamedata")
}

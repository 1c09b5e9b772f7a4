package repository

import (
	"context"

	"github.com/forgo/worldforge/api/internal/database"
	"github.com/forgo/worldforge/api/internal/model"
)

// AreaScoped is a Collection whose records belong to an area. The area_id
// field is the ownership reference the cleanup listeners purge by.
type AreaScoped[T any] struct {
	*Collection[T]
}

func newAreaScoped[T any](db database.Database, table string) *AreaScoped[T] {
	return &AreaScoped[T]{Collection: NewCollection[T](db, table)}
}

// DeleteByAreaID purges every record owned by the given area. Zero matching
// records is a successful no-op, which keeps cleanup idempotent.
func (r *AreaScoped[T]) DeleteByAreaID(ctx context.Context, areaID string) error {
	return r.DeleteByField(ctx, "area_id", areaID)
}

// NewRoomRepository handles room data access.
func NewRoomRepository(db database.Database) *AreaScoped[model.Room] {
	return newAreaScoped[model.Room](db, "room")
}

// NewMobileRepository handles mobile data access.
func NewMobileRepository(db database.Database) *AreaScoped[model.Mobile] {
	return newAreaScoped[model.Mobile](db, "mobile")
}

// NewShopRepository handles shop data access.
func NewShopRepository(db database.Database) *AreaScoped[model.Shop] {
	return newAreaScoped[model.Shop](db, "shop")
}

// NewResetRepository handles reset data access.
func NewResetRepository(db database.Database) *AreaScoped[model.Reset] {
	return newAreaScoped[model.Reset](db, "reset")
}

// NewSpecialRepository handles special data access.
func NewSpecialRepository(db database.Database) *AreaScoped[model.Special] {
	return newAreaScoped[model.Special](db, "special")
}

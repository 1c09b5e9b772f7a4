package repository

import (
	"github.com/forgo/worldforge/api/internal/database"
	"github.com/forgo/worldforge/api/internal/model"
)

// NewAreaRepository handles area data access.
func NewAreaRepository(db database.Database) *Collection[model.Area] {
	return NewCollection[model.Area](db, "area")
}

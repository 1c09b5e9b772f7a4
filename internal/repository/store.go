package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/forgo/worldforge/api/internal/database"
)

// Collection provides document-store access for one entity family's table.
// Writes are full-record upserts; there is no partial patch.
type Collection[T any] struct {
	db    database.Database
	table string
}

// NewCollection binds a collection to its table.
func NewCollection[T any](db database.Database, table string) *Collection[T] {
	return &Collection[T]{db: db, table: table}
}

// Table returns the SurrealDB table this collection reads and writes.
func (c *Collection[T]) Table() string { return c.table }

// List returns every record in the collection.
func (c *Collection[T]) List(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf(`SELECT * FROM %s`, c.table)

	result, err := c.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows, _ := extractQueryResults(result)
	out := make([]*T, 0, len(rows))
	for _, row := range rows {
		record, err := decodeRecord[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

// Get retrieves a record by ID. A missing record is (nil, nil), not an error.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	query := `SELECT * FROM type::record($id)`

	result, err := c.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRecord[T](result)
}

// GetByName retrieves the first record whose name field matches.
func (c *Collection[T]) GetByName(ctx context.Context, name string) (*T, error) {
	return c.GetByField(ctx, "name", name)
}

// GetByField retrieves the first record whose field matches value. A missing
// record is (nil, nil).
func (c *Collection[T]) GetByField(ctx context.Context, field string, value interface{}) (*T, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $value LIMIT 1`, c.table, field)

	result, err := c.db.QueryOne(ctx, query, map[string]interface{}{"value": value})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRecord[T](result)
}

// Create persists a new record. A blank id gets a store-assigned identifier.
// A supplied id is accepted as-is with upsert semantics: no pre-existence
// check is made.
func (c *Collection[T]) Create(ctx context.Context, id string, entity *T) (*T, error) {
	if strings.TrimSpace(id) == "" {
		id = c.table + ":" + uuid.New().String()
	}
	return c.Save(ctx, id, entity)
}

// Save writes a full replacement of the record under id.
func (c *Collection[T]) Save(ctx context.Context, id string, entity *T) (*T, error) {
	data, err := encodeRecord(entity)
	if err != nil {
		return nil, err
	}

	query := `UPSERT type::record($id) CONTENT $data`
	result, err := c.db.QueryOne(ctx, query, map[string]interface{}{
		"id":   id,
		"data": data,
	})
	if err != nil {
		return nil, err
	}
	return decodeRecord[T](result)
}

// Delete removes a record by ID.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	return c.db.Execute(ctx, query, map[string]interface{}{"id": id})
}

// DeleteAll removes every record in the collection.
func (c *Collection[T]) DeleteAll(ctx context.Context) error {
	query := fmt.Sprintf(`DELETE %s`, c.table)
	return c.db.Execute(ctx, query, nil)
}

// DeleteByField removes every record whose field matches value. Zero
// matching records is a successful no-op.
func (c *Collection[T]) DeleteByField(ctx context.Context, field string, value interface{}) error {
	query := fmt.Sprintf(`DELETE %s WHERE %s = $value`, c.table, field)
	return c.db.Execute(ctx, query, map[string]interface{}{"value": value})
}

// Count returns the number of records in the collection.
func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT count() AS count FROM %s GROUP ALL`, c.table)

	result, err := c.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

// Exists reports whether a record with the given ID exists.
func (c *Collection[T]) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT id FROM type::record($id)`

	_, err := c.db.QueryOne(ctx, query, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

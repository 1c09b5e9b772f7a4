// Package database provides the database abstraction layer for WorldForge.
//
// This package defines the Database interface that abstracts SurrealDB
// operations, allowing for clean separation between the entity services and
// data access.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns multiple results (for SELECT queries returning lists)
//   - QueryOne: Returns a single result (for SELECT by ID)
//   - Execute: No return value (for CREATE/UPSERT/DELETE mutations)
//
// All writes are single-document. The store offers no multi-document
// transactions; cross-collection consistency is handled one layer up, by the
// AreaDeleted cleanup protocol in internal/events and internal/service.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	db := database.NewSurrealDB(cfg)
//	db.Connect(ctx)
//	defer db.Close()
//
//	result, err := db.QueryOne(ctx, "SELECT * FROM type::record($id)", map[string]interface{}{"id": areaID})
package database

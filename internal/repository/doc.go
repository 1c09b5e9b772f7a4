// Package repository implements the data access layer for WorldForge.
//
// All entity families share one generic Collection type that speaks the
// document-store contract: get-by-id, get-by-secondary-field, list-all,
// upsert, delete-by-id, delete-all, delete-all-by-field, count, and
// exists-by-id. Family constructors (NewAreaRepository, NewRoomRepository,
// ...) bind a Collection to its SurrealDB table; families owned by an area
// additionally expose DeleteByAreaID for the cleanup listeners.
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - UPSERT ... CONTENT for full-record replacement writes
//
// Repositories accept a database.Database interface, keeping connection
// management at a higher level and making tests trivial to fake.
//
// # Example Usage
//
//	areas := repository.NewAreaRepository(db)
//	area, err := areas.Get(ctx, "area:midgaard")
//	if err != nil {
//	    return err
//	}
//	if area == nil {
//	    // Handle missing record
//	}
package repository

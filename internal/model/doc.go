// Package model defines the game-world entity families persisted by
// WorldForge and the error taxonomy shared by the service layer.
//
// Every entity carries an opaque string ID in SurrealDB record form
// ("table:identifier"). Records that belong to an area (rooms, shops,
// mobiles, resets, specials) carry an AreaID reference; the reference is
// validated for presence at write time, never for existence. Orphans are
// cleaned up reactively when an area is deleted.
package model

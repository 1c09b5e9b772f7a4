// Package service implements the entity services for WorldForge.
//
// Every entity family (area, room, item, mobile, shop, reset, special,
// class, race, command, player, character, gamedata) exposes the same
// six-operation contract: ListAll, GetByID, GetByName, Create, SaveForID,
// DeleteByID, DeleteAll. One generic EntityService implements the contract;
// families with extra behavior (area event publication, ownership guards,
// player password hashing) wrap it.
//
// # Operation Pipeline
//
// Each operation runs guard validation first, then delegates to the store
// under the family's resilience policy:
//
//   - guard rejections and not-found results surface immediately, unwrapped
//   - store failures surface as a persistence-unavailable error carrying the
//     original cause and a best-effort ID, never the raw store error type
//   - ListAll alone substitutes an empty list instead of surfacing a failure
//
// # Repository Interfaces
//
// Services depend on the Repository interface defined here, not on concrete
// repositories, so unit tests fake the store with plain structs.
//
// # Cascading Cleanup
//
// Deleting an area publishes one AreaDeleted event per removed area after
// the store acknowledges the delete. RegisterCleanupListeners subscribes the
// room, shop, mobile, reset, and special purges to that event; see
// cleanup.go. The area service never references its dependents directly.
// Player deletion follows the same protocol: PlayerDeleted triggers the
// character purge via RegisterPlayerCleanupListeners.
package service

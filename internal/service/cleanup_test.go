package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgo/worldforge/api/internal/events"
)

// fakeAreaScoped records purge calls and optionally fails.
type fakeAreaScoped struct {
	purged []string
	err    error
}

func (f *fakeAreaScoped) DeleteByAreaID(ctx context.Context, areaID string) error {
	f.purged = append(f.purged, areaID)
	return f.err
}

func TestRegisterCleanupListeners_PurgesEveryDependent(t *testing.T) {
	bus := events.NewBus(nil)
	rooms := &fakeAreaScoped{}
	shops := &fakeAreaScoped{}
	mobiles := &fakeAreaScoped{}
	resets := &fakeAreaScoped{}
	specials := &fakeAreaScoped{}

	RegisterCleanupListeners(bus, CleanupConfig{
		Rooms:    rooms,
		Shops:    shops,
		Mobiles:  mobiles,
		Resets:   resets,
		Specials: specials,
	})

	bus.Publish(context.Background(), events.AreaDeleted{AreaID: "area:A1"})

	for name, repo := range map[string]*fakeAreaScoped{
		"rooms": rooms, "shops": shops, "mobiles": mobiles, "resets": resets, "specials": specials,
	} {
		assert.Equal(t, []string{"area:A1"}, repo.purged, name)
	}
}

func TestRegisterCleanupListeners_FailureIsIsolated(t *testing.T) {
	bus := events.NewBus(nil)
	rooms := &fakeAreaScoped{err: errors.New("store down")}
	shops := &fakeAreaScoped{}

	RegisterCleanupListeners(bus, CleanupConfig{Rooms: rooms, Shops: shops})

	bus.Publish(context.Background(), events.AreaDeleted{AreaID: "area:A1"})

	assert.Equal(t, []string{"area:A1"}, rooms.purged)
	assert.Equal(t, []string{"area:A1"}, shops.purged, "a failing listener must not block the others")
}

// fakePlayerScoped records character purge calls.
type fakePlayerScoped struct {
	purged []string
}

func (f *fakePlayerScoped) DeleteByPlayerID(ctx context.Context, playerID string) error {
	f.purged = append(f.purged, playerID)
	return nil
}

func TestRegisterPlayerCleanupListeners_PurgesCharacters(t *testing.T) {
	bus := events.NewBus(nil)
	characters := &fakePlayerScoped{}

	RegisterPlayerCleanupListeners(bus, characters, nil)

	bus.Publish(context.Background(), events.PlayerDeleted{PlayerID: "player:vex"})

	assert.Equal(t, []string{"player:vex"}, characters.purged)
}

func TestRegisterCleanupListeners_RepeatedEventIsHarmless(t *testing.T) {
	bus := events.NewBus(nil)
	rooms := &fakeAreaScoped{}

	RegisterCleanupListeners(bus, CleanupConfig{Rooms: rooms})

	bus.Publish(context.Background(), events.AreaDeleted{AreaID: "area:A1"})
	bus.Publish(context.Background(), events.AreaDeleted{AreaID: "area:A1"})

	// The second purge hits zero remaining rows; delivering the event twice
	// is a no-op at the collection level.
	assert.Equal(t, []string{"area:A1", "area:A1"}, rooms.purged)
}

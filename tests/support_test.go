// Package tests contains end-to-end acceptance tests for the WorldForge API.
//
// Most suites run the full HTTP stack (handlers, services, event bus,
// cleanup listeners) against in-memory stores, so they pass without any
// external service. The smoke suite additionally runs against a real
// SurrealDB instance and is skipped unless TEST_DB_HOST is set.
//
// To run the database-backed tests:
//  1. Start SurrealDB: surreal start memory -A --user root --pass root
//  2. Run tests: TEST_DB_HOST=localhost go test ./tests/...
package tests

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/forgo/worldforge/api/internal/events"
	"github.com/forgo/worldforge/api/internal/handler"
	"github.com/forgo/worldforge/api/internal/model"
	"github.com/forgo/worldforge/api/internal/resilience"
	"github.com/forgo/worldforge/api/internal/service"
)

// ============================================================================
// In-memory store
// ============================================================================

// memRepo is an in-memory Repository[T] backed by a map. It is safe for
// concurrent use and deterministic: List returns records ordered by ID.
type memRepo[T any] struct {
	mu      sync.Mutex
	records map[string]*T
	name    func(*T) string

	// failWith, when set, makes every store operation fail with it.
	failWith error
}

func newMemRepo[T any](name func(*T) string) *memRepo[T] {
	return &memRepo[T]{
		records: make(map[string]*T),
		name:    name,
	}
}

func (m *memRepo[T]) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func (m *memRepo[T]) List(ctx context.Context) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	ids := make([]string, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.records[id])
	}
	return out, nil
}

func (m *memRepo[T]) Get(ctx context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.records[id], nil
}

func (m *memRepo[T]) GetByName(ctx context.Context, name string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, rec := range m.records {
		if m.name != nil && m.name(rec) == name {
			return rec, nil
		}
	}
	return nil, nil
}

func (m *memRepo[T]) Create(ctx context.Context, id string, entity *T) (*T, error) {
	return m.Save(ctx, id, entity)
}

func (m *memRepo[T]) Save(ctx context.Context, id string, entity *T) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.records[id] = entity
	return entity, nil
}

func (m *memRepo[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.records, id)
	return nil
}

func (m *memRepo[T]) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.records = make(map[string]*T)
	return nil
}

func (m *memRepo[T]) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return 0, m.failWith
	}
	return len(m.records), nil
}

func (m *memRepo[T]) Exists(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return false, m.failWith
	}
	_, ok := m.records[id]
	return ok, nil
}

// memScoped adds area-scoped bulk deletion to memRepo.
type memScoped[T any] struct {
	*memRepo[T]
	areaID func(*T) string
}

func newMemScoped[T any](name, areaID func(*T) string) *memScoped[T] {
	return &memScoped[T]{memRepo: newMemRepo(name), areaID: areaID}
}

func (m *memScoped[T]) DeleteByAreaID(ctx context.Context, areaID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for id, rec := range m.records {
		if m.areaID(rec) == areaID {
			delete(m.records, id)
		}
	}
	return nil
}

// memItems adds the vnum index to memRepo.
type memItems struct {
	*memRepo[model.Item]
}

func (m *memItems) GetByVnum(ctx context.Context, vnum int) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, item := range m.records {
		if item.Vnum == vnum {
			return item, nil
		}
	}
	return nil, nil
}

// memCharacters adds player-scoped bulk deletion to memRepo.
type memCharacters struct {
	*memRepo[model.Character]
}

func (m *memCharacters) DeleteByPlayerID(ctx context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for id, c := range m.records {
		if c.PlayerID == playerID {
			delete(m.records, id)
		}
	}
	return nil
}

// ============================================================================
// World harness
// ============================================================================

// world wires the full API surface over in-memory stores.
type world struct {
	mux *http.ServeMux

	areas      *memRepo[model.Area]
	rooms      *memScoped[model.Room]
	mobiles    *memScoped[model.Mobile]
	shops      *memScoped[model.Shop]
	resets     *memScoped[model.Reset]
	specials   *memScoped[model.Special]
	items      *memItems
	players    *memRepo[model.Player]
	characters *memCharacters
}

func newWorld(t *testing.T) *world {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	// Generous thresholds keep the breaker out of the way unless a test
	// drives a store into failure on purpose.
	policy := resilience.Config{
		FailureRateThreshold: 0.5,
		MinRequests:          1000,
		Window:               time.Minute,
		OpenTimeout:          time.Minute,
		MaxRetries:           1,
		RetryInterval:        time.Millisecond,
		MaxConcurrent:        25,
	}
	state := func(family string) *resilience.State {
		return resilience.NewState(family, policy, logger)
	}

	w := &world{
		mux:        http.NewServeMux(),
		areas:      newMemRepo(func(a *model.Area) string { return a.Name }),
		rooms:      newMemScoped(func(r *model.Room) string { return r.Name }, func(r *model.Room) string { return r.AreaID }),
		mobiles:    newMemScoped(func(m *model.Mobile) string { return m.Name }, func(m *model.Mobile) string { return m.AreaID }),
		shops:      newMemScoped(func(s *model.Shop) string { return "" }, func(s *model.Shop) string { return s.AreaID }),
		resets:     newMemScoped(func(r *model.Reset) string { return "" }, func(r *model.Reset) string { return r.AreaID }),
		specials:   newMemScoped(func(s *model.Special) string { return "" }, func(s *model.Special) string { return s.AreaID }),
		items:      &memItems{memRepo: newMemRepo(func(i *model.Item) string { return i.Name })},
		players:    newMemRepo(func(p *model.Player) string { return p.Name }),
		characters: &memCharacters{memRepo: newMemRepo(func(c *model.Character) string { return c.Name })},
	}

	bus := events.NewBus(logger)
	service.RegisterCleanupListeners(bus, service.CleanupConfig{
		Rooms:    w.rooms,
		Shops:    w.shops,
		Mobiles:  w.mobiles,
		Resets:   w.resets,
		Specials: w.specials,
		Logger:   logger,
	})
	service.RegisterPlayerCleanupListeners(bus, w.characters, logger)

	areaService := service.NewAreaService(service.AreaServiceConfig{
		Repo:   w.areas,
		State:  state("area"),
		Bus:    bus,
		Logger: logger,
	})

	handler.NewEntityHandler[model.Area](areaService).Register(w.mux, "/v1/areas")
	handler.NewEntityHandler[model.Room](service.NewRoomService(w.rooms, state("room"), logger)).Register(w.mux, "/v1/rooms")
	handler.NewItemHandler(service.NewItemService(w.items, state("item"), logger)).Register(w.mux, "/v1/items")
	handler.NewEntityHandler[model.Mobile](service.NewMobileService(w.mobiles, state("mobile"), logger)).Register(w.mux, "/v1/mobiles")
	handler.NewEntityHandler[model.Shop](service.NewShopService(w.shops, state("shop"), logger)).Register(w.mux, "/v1/shops")
	handler.NewEntityHandler[model.Reset](service.NewResetService(w.resets, state("reset"), logger)).Register(w.mux, "/v1/resets")
	handler.NewEntityHandler[model.Special](service.NewSpecialService(w.specials, state("special"), logger)).Register(w.mux, "/v1/specials")
	handler.NewEntityHandler[model.Player](service.NewPlayerService(service.PlayerServiceConfig{
		Repo:   w.players,
		State:  state("player"),
		Bus:    bus,
		Logger: logger,
	})).Register(w.mux, "/v1/players")
	handler.NewEntityHandler[model.Character](service.NewCharacterService(w.characters, state("character"), logger)).Register(w.mux, "/v1/characters")

	return w
}

// do runs one request through the full stack and returns the recorder.
func (w *world) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	w.mux.ServeHTTP(rr, req)
	return rr
}

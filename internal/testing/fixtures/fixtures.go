package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/worldforge/api/internal/database"
	"github.com/forgo/worldforge/api/internal/model"
	"github.com/forgo/worldforge/api/internal/repository"
)

// Factory creates test world content in the database
type Factory struct {
	db database.Database

	areas    *repository.Collection[model.Area]
	rooms    *repository.AreaScoped[model.Room]
	mobiles  *repository.AreaScoped[model.Mobile]
	shops    *repository.AreaScoped[model.Shop]
	resets   *repository.AreaScoped[model.Reset]
	specials *repository.AreaScoped[model.Special]
	items    *repository.ItemRepository
	players  *repository.Collection[model.Player]
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		db:       db,
		areas:    repository.NewAreaRepository(db),
		rooms:    repository.NewRoomRepository(db),
		mobiles:  repository.NewMobileRepository(db),
		shops:    repository.NewShopRepository(db),
		resets:   repository.NewResetRepository(db),
		specials: repository.NewSpecialRepository(db),
		items:    repository.NewItemRepository(db),
		players:  repository.NewPlayerRepository(db),
	}
}

// randomID generates a random hex suffix for record IDs
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// AreaOpts customizes area creation
type AreaOpts struct {
	Name      string
	Author    string
	LowLevel  int
	HighLevel int
}

// CreateArea creates an area with sensible defaults
func (f *Factory) CreateArea(t *testing.T, opts ...AreaOpts) *model.Area {
	t.Helper()

	o := AreaOpts{}
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Name == "" {
		o.Name = "Test Area " + randomID()
	}
	if o.Author == "" {
		o.Author = "Builder"
	}
	if o.HighLevel == 0 {
		o.HighLevel = 50
	}

	area := &model.Area{
		ID:        "area:" + randomID(),
		Author:    o.Author,
		Name:      o.Name,
		LowLevel:  o.LowLevel,
		HighLevel: o.HighLevel,
	}
	created, err := f.areas.Create(ctx(), area.ID, area)
	if err != nil {
		t.Fatalf("fixtures: failed to create area: %v", err)
	}
	return created
}

// CreateRoom creates a room inside the given area
func (f *Factory) CreateRoom(t *testing.T, area *model.Area, vnum int) *model.Room {
	t.Helper()

	room := &model.Room{
		ID:         "room:" + randomID(),
		AreaID:     area.ID,
		Vnum:       vnum,
		Name:       fmt.Sprintf("Room %d", vnum),
		SectorType: model.SectorCity,
	}
	created, err := f.rooms.Create(ctx(), room.ID, room)
	if err != nil {
		t.Fatalf("fixtures: failed to create room: %v", err)
	}
	return created
}

// CreateMobile creates a mobile template inside the given area
func (f *Factory) CreateMobile(t *testing.T, area *model.Area, vnum int) *model.Mobile {
	t.Helper()

	mob := &model.Mobile{
		ID:     "mobile:" + randomID(),
		AreaID: area.ID,
		Vnum:   vnum,
		Name:   fmt.Sprintf("mob %d", vnum),
		Level:  10,
	}
	created, err := f.mobiles.Create(ctx(), mob.ID, mob)
	if err != nil {
		t.Fatalf("fixtures: failed to create mobile: %v", err)
	}
	return created
}

// CreateShop creates a shop run by the given keeper mobile
func (f *Factory) CreateShop(t *testing.T, area *model.Area, keeper *model.Mobile) *model.Shop {
	t.Helper()

	shop := &model.Shop{
		ID:         "shop:" + randomID(),
		AreaID:     area.ID,
		Keeper:     keeper.ID,
		ProfitBuy:  120,
		ProfitSell: 80,
		OpenHour:   6,
		CloseHour:  22,
	}
	created, err := f.shops.Create(ctx(), shop.ID, shop)
	if err != nil {
		t.Fatalf("fixtures: failed to create shop: %v", err)
	}
	return created
}

// CreateReset creates a load-mobile reset in the given area
func (f *Factory) CreateReset(t *testing.T, area *model.Area, mobVnum, roomVnum int) *model.Reset {
	t.Helper()

	reset := &model.Reset{
		ID:      "reset:" + randomID(),
		AreaID:  area.ID,
		Command: model.ResetLoadMobile,
		Arg1:    mobVnum,
		Arg3:    roomVnum,
	}
	created, err := f.resets.Create(ctx(), reset.ID, reset)
	if err != nil {
		t.Fatalf("fixtures: failed to create reset: %v", err)
	}
	return created
}

// CreateSpecial binds a special function to the given mobile
func (f *Factory) CreateSpecial(t *testing.T, area *model.Area, mob *model.Mobile) *model.Special {
	t.Helper()

	special := &model.Special{
		ID:       "special:" + randomID(),
		AreaID:   area.ID,
		Mobile:   mob.ID,
		Function: "spec_guard",
	}
	created, err := f.specials.Create(ctx(), special.ID, special)
	if err != nil {
		t.Fatalf("fixtures: failed to create special: %v", err)
	}
	return created
}

// CreateItem creates an item template. Items are not area-owned.
func (f *Factory) CreateItem(t *testing.T, vnum int) *model.Item {
	t.Helper()

	item := &model.Item{
		ID:       "item:" + randomID(),
		Vnum:     vnum,
		Name:     fmt.Sprintf("item %d", vnum),
		ItemType: "weapon",
		Level:    10,
	}
	created, err := f.items.Create(ctx(), item.ID, item)
	if err != nil {
		t.Fatalf("fixtures: failed to create item: %v", err)
	}
	return created
}

// CreatePlayer creates a player account
func (f *Factory) CreatePlayer(t *testing.T) *model.Player {
	t.Helper()

	player := &model.Player{
		ID:   "player:" + randomID(),
		Name: "player_" + randomID(),
		Role: model.PlayerRolePlayer,
	}
	created, err := f.players.Create(ctx(), player.ID, player)
	if err != nil {
		t.Fatalf("fixtures: failed to create player: %v", err)
	}
	return created
}

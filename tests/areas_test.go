package tests

/*
FEATURE: Area Management & Cascading Deletion
DOMAIN: World Content

ACCEPTANCE CRITERIA:
===================

AC-AREA-001: Create Area
  GIVEN a valid area payload with an ID and name
  WHEN the area is created
  THEN the API returns 201 and the record is retrievable

AC-AREA-002: Create Area - Name Required
  GIVEN an area payload with a blank name
  WHEN the area is created
  THEN the request fails with 422 Validation Error

AC-AREA-003: Get Missing Area
  GIVEN no area with the requested ID
  WHEN the area is fetched
  THEN the request fails with 404 Not Found

AC-AREA-004: Delete Area Cascades
  GIVEN an area with rooms, mobiles, shops, resets and specials
  WHEN the area is deleted
  THEN all of its dependent records are purged
  AND records belonging to other areas are untouched
  AND item templates survive

AC-AREA-005: Delete Missing Area
  GIVEN no area with the requested ID
  WHEN the area is deleted
  THEN the request fails with 404
  AND no dependent records are purged

AC-AREA-006: Delete All Areas
  GIVEN several areas with dependent records
  WHEN all areas are deleted
  THEN the API reports the number of deleted areas
  AND every dependent collection is emptied

AC-AREA-007: List Falls Back To Empty
  GIVEN the area store is failing
  WHEN areas are listed
  THEN the API returns 200 with an empty collection
*/

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forgo/worldforge/api/internal/handler"
	"github.com/forgo/worldforge/api/internal/model"
	"github.com/forgo/worldforge/api/internal/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedWorld creates two areas, each with one of every dependent record,
// plus one item template.
func seedWorld(t *testing.T, w *world) {
	t.Helper()
	ctx := context.Background()

	for _, a := range []struct{ area, suffix string }{
		{"area:midgaard", "m"},
		{"area:forest", "f"},
	} {
		_, err := w.areas.Create(ctx, a.area, &model.Area{ID: a.area, Name: "Area " + a.suffix})
		require.NoError(t, err)
		_, err = w.rooms.Create(ctx, "room:"+a.suffix, &model.Room{ID: "room:" + a.suffix, AreaID: a.area, Name: "Room " + a.suffix})
		require.NoError(t, err)
		_, err = w.mobiles.Create(ctx, "mobile:"+a.suffix, &model.Mobile{ID: "mobile:" + a.suffix, AreaID: a.area, Name: "Mob " + a.suffix})
		require.NoError(t, err)
		_, err = w.shops.Create(ctx, "shop:"+a.suffix, &model.Shop{ID: "shop:" + a.suffix, AreaID: a.area, Keeper: "mobile:" + a.suffix})
		require.NoError(t, err)
		_, err = w.resets.Create(ctx, "reset:"+a.suffix, &model.Reset{ID: "reset:" + a.suffix, AreaID: a.area, Command: model.ResetLoadMobile})
		require.NoError(t, err)
		_, err = w.specials.Create(ctx, "special:"+a.suffix, &model.Special{ID: "special:" + a.suffix, AreaID: a.area, Mobile: "mobile:" + a.suffix, Function: "spec_guard"})
		require.NoError(t, err)
	}

	_, err := w.items.Create(ctx, "item:sword", &model.Item{ID: "item:sword", Vnum: 3022, Name: "a long sword"})
	require.NoError(t, err)
}

func TestArea_Create(t *testing.T) {
	// AC-AREA-001: Create Area
	w := newWorld(t)

	area := &model.Area{ID: "area:midgaard", Author: "Hatchet", Name: "Midgaard", HighLevel: 50}
	rr := w.do(helpers.JSONRequest(t, http.MethodPost, "/v1/areas", area))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = w.do(httptest.NewRequest(http.MethodGet, "/v1/areas/area:midgaard", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data model.Area `json:"data"`
	}
	helpers.DecodeResponse(t, rr.Body, &resp)
	assert.Equal(t, "Midgaard", resp.Data.Name)
	assert.Equal(t, "Hatchet", resp.Data.Author)
}

func TestArea_Create_NameRequired(t *testing.T) {
	// AC-AREA-002: Create Area - Name Required
	w := newWorld(t)

	rr := w.do(helpers.JSONRequest(t, http.MethodPost, "/v1/areas", &model.Area{ID: "area:unnamed"}))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	exists, err := w.areas.Exists(context.Background(), "area:unnamed")
	require.NoError(t, err)
	assert.False(t, exists, "invalid area must not reach the store")
}

func TestArea_Get_Missing(t *testing.T) {
	// AC-AREA-003: Get Missing Area
	w := newWorld(t)

	rr := w.do(httptest.NewRequest(http.MethodGet, "/v1/areas/area:nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestArea_Delete_Cascades(t *testing.T) {
	// AC-AREA-004: Delete Area Cascades
	w := newWorld(t)
	seedWorld(t, w)
	ctx := context.Background()

	rr := w.do(httptest.NewRequest(http.MethodDelete, "/v1/areas/area:midgaard", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	// Everything owned by the deleted area is gone.
	room, err := w.rooms.Get(ctx, "room:m")
	require.NoError(t, err)
	assert.Nil(t, room, "room:m should be purged")
	mob, err := w.mobiles.Get(ctx, "mobile:m")
	require.NoError(t, err)
	assert.Nil(t, mob, "mobile:m should be purged")

	roomCount, err := w.rooms.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, roomCount)
	mobCount, err := w.mobiles.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, mobCount)
	shopCount, err := w.shops.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, shopCount)
	resetCount, err := w.resets.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, resetCount)
	specialCount, err := w.specials.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, specialCount)

	// The untouched area keeps its records.
	kept, err := w.rooms.Get(ctx, "room:f")
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, "area:forest", kept.AreaID)

	// Item templates are not area-owned and survive.
	item, err := w.items.Get(ctx, "item:sword")
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestArea_Delete_Missing(t *testing.T) {
	// AC-AREA-005: Delete Missing Area
	w := newWorld(t)
	seedWorld(t, w)
	ctx := context.Background()

	rr := w.do(httptest.NewRequest(http.MethodDelete, "/v1/areas/area:nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	roomCount, err := w.rooms.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, roomCount, "failed delete must not purge dependents")
}

func TestArea_DeleteAll(t *testing.T) {
	// AC-AREA-006: Delete All Areas
	w := newWorld(t)
	seedWorld(t, w)
	ctx := context.Background()

	rr := w.do(httptest.NewRequest(http.MethodDelete, "/v1/areas", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Deleted int `json:"deleted"`
	}
	helpers.DecodeResponse(t, rr.Body, &resp)
	assert.Equal(t, 2, resp.Deleted)

	for name, count := range map[string]func(context.Context) (int, error){
		"rooms":    w.rooms.Count,
		"mobiles":  w.mobiles.Count,
		"shops":    w.shops.Count,
		"resets":   w.resets.Count,
		"specials": w.specials.Count,
	} {
		n, err := count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n, "%s should be emptied", name)
	}

	itemCount, err := w.items.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, itemCount, "items survive world teardown")
}

func TestArea_List_FallsBackToEmpty(t *testing.T) {
	// AC-AREA-007: List Falls Back To Empty
	w := newWorld(t)
	seedWorld(t, w)

	w.areas.fail(errors.New("connection reset"))

	rr := w.do(httptest.NewRequest(http.MethodGet, "/v1/areas", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp handler.CollectionResponse
	helpers.DecodeResponse(t, rr.Body, &resp)
	assert.Zero(t, resp.Count)
}

package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-admin/models"
	"hotel-admin/utils"
)

func TestResource_CreateRejectsCaseInsensitiveDuplicate(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	created, err := reg.Addons.Create(ctx, &models.Addon{AddonName: "Breakfast", Price: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Breakfast", created.AddonName)

	_, err = reg.Addons.Create(ctx, &models.Addon{AddonName: "breakfast", Price: 5})
	requireKind(t, err, KindDuplicate)
	assert.Equal(t, "addon_name 'breakfast' already exists", AsAppError(err).Message)
}

func TestResource_CreateRejectsNonASCIICaseDuplicate(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	_, err := reg.Features.Create(ctx, &models.Feature{FeatureName: "Élan"})
	require.NoError(t, err)

	for _, name := range []string{"élan", "ÉLAN"} {
		_, err = reg.Features.Create(ctx, &models.Feature{FeatureName: name})
		requireKind(t, err, KindDuplicate)
	}

	_, err = reg.Addons.Create(ctx, &models.Addon{AddonName: "Straße", Price: 1})
	require.NoError(t, err)
	_, err = reg.Addons.Create(ctx, &models.Addon{AddonName: "STRASSE", Price: 1})
	requireKind(t, err, KindDuplicate)
}

func TestResource_UpdateKeepsOwnName(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	a, err := reg.Addons.Create(ctx, &models.Addon{AddonName: "Breakfast", Price: 10})
	require.NoError(t, err)
	_, err = reg.Addons.Create(ctx, &models.Addon{AddonName: "Parking", Price: 4})
	require.NoError(t, err)

	updated, err := reg.Addons.Update(ctx, a.ID, &models.Addon{AddonName: "BREAKFAST", Price: 12})
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, "BREAKFAST", updated.AddonName)
	assert.Equal(t, 12.0, updated.Price)
	assert.Equal(t, a.CreatedAt.Unix(), updated.CreatedAt.Unix())

	_, err = reg.Addons.Update(ctx, a.ID, &models.Addon{AddonName: "parking", Price: 12})
	requireKind(t, err, KindDuplicate)
}

func TestResource_UpdateAndDeleteMissing(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	_, err := reg.Addons.Update(ctx, "missing", &models.Addon{AddonName: "x", Price: 1})
	requireKind(t, err, KindNotFound)

	err = reg.Addons.Delete(ctx, "missing")
	requireKind(t, err, KindNotFound)

	_, err = reg.Addons.Get(ctx, "missing")
	requireKind(t, err, KindNotFound)
	assert.Equal(t, "Addon not found", AsAppError(err).Message)
}

func TestResource_ListPagination(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()
	fx := seedRoomParents(t, reg)

	for i := 1; i <= 12; i++ {
		_, err := reg.Rooms.Create(ctx, &models.Room{
			RoomNumber:   fmt.Sprintf("%03d", 100+i),
			FloorID:      fx.floor.ID,
			RoomClassID:  fx.roomClass.ID,
			RoomStatusID: fx.status.ID,
		})
		require.NoError(t, err)
	}

	page, err := reg.Rooms.List(ctx, utils.NormalizePageQuery("2", "5", ""))
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, utils.PageMeta{Page: 2, Limit: 5, Total: 12, TotalPages: 3}, page.Meta)

	last, err := reg.Rooms.List(ctx, utils.NormalizePageQuery("3", "5", ""))
	require.NoError(t, err)
	assert.Len(t, last.Items, 2)

	require.NotNil(t, page.Items[0].Floor)
	assert.Equal(t, 1, page.Items[0].Floor.FloorNumber)
	require.NotNil(t, page.Items[0].RoomStatus)
}

func TestResource_ListHugeLimitPastEnd(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	_, err := reg.Addons.Create(ctx, &models.Addon{AddonName: "Breakfast", Price: 10})
	require.NoError(t, err)

	q := utils.NormalizePageQuery("3", strconv.Itoa(math.MaxInt), "")
	page, err := reg.Addons.List(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Meta.Page)
	assert.Equal(t, 1, page.Meta.TotalPages)
}

func TestResource_ListSearchWildcardsAreLiteral(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Breakfast", "50% off", "late_checkout", "Spa!"} {
		_, err := reg.Addons.Create(ctx, &models.Addon{AddonName: name, Price: 1})
		require.NoError(t, err)
	}

	cases := map[string]int{
		"%":   1,
		"_":   1,
		"!":   1,
		"e_c": 1,
		"a":   3,
	}
	for term, want := range cases {
		page, err := reg.Addons.List(ctx, utils.NormalizePageQuery("1", "10", term))
		require.NoError(t, err)
		assert.Equal(t, int64(want), page.Meta.Total, "search %q", term)
	}
}

func TestResource_ListEmptyHasOnePage(t *testing.T) {
	reg := NewRegistry(newTestDB(t))

	page, err := reg.Guests.List(context.Background(), utils.NormalizePageQuery("", "", ""))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Meta.Total)
	assert.Equal(t, 1, page.Meta.TotalPages)
}

func TestResource_ListSearch(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	guests := []models.Guest{
		{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0101"},
		{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", Phone: "555-0202"},
		{FirstName: "Grace", LastName: "Hopper", Email: "grace@navy.mil", Phone: "555-0303"},
	}
	for i := range guests {
		_, err := reg.Guests.Create(ctx, &guests[i])
		require.NoError(t, err)
	}

	cases := map[string]int{
		"TURING":      1,
		"example.com": 2,
		"0303":        1,
		"a":           3,
		"nobody":      0,
	}
	for term, want := range cases {
		page, err := reg.Guests.List(ctx, utils.NormalizePageQuery("1", "10", term))
		require.NoError(t, err)
		assert.Equal(t, int64(want), page.Meta.Total, "search %q", term)
		assert.Len(t, page.Items, want, "search %q", term)
	}
}

func TestResource_FloorSearchIsNumericExact(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	for _, n := range []int{1, 2, 12} {
		_, err := reg.Floors.Create(ctx, &models.Floor{FloorNumber: n})
		require.NoError(t, err)
	}

	page, err := reg.Floors.List(ctx, utils.NormalizePageQuery("1", "10", "1"))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].FloorNumber)

	page, err = reg.Floors.List(ctx, utils.NormalizePageQuery("1", "10", "first"))
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	all, err := reg.Floors.List(ctx, utils.NormalizePageQuery("1", "10", ""))
	require.NoError(t, err)
	require.Len(t, all.Items, 3)
	assert.Equal(t, []int{1, 2, 12}, []int{all.Items[0].FloorNumber, all.Items[1].FloorNumber, all.Items[2].FloorNumber})

	_, err = reg.Floors.Create(ctx, &models.Floor{FloorNumber: 12})
	requireKind(t, err, KindDuplicate)
}

func TestResource_ListSort(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Spa", "Breakfast", "Parking"} {
		_, err := reg.Addons.Create(ctx, &models.Addon{AddonName: name, Price: 1})
		require.NoError(t, err)
	}

	q := utils.NormalizePageQuery("1", "10", "")
	q.SortBy, q.SortOrder = "addon_name", "asc"
	page, err := reg.Addons.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Breakfast", page.Items[0].AddonName)
	assert.Equal(t, "Spa", page.Items[2].AddonName)

	q.SortBy = "password"
	_, err = reg.Addons.List(ctx, q)
	requireKind(t, err, KindValidation)

	q.SortBy, q.SortOrder = "addon_name", "sideways"
	_, err = reg.Addons.List(ctx, q)
	requireKind(t, err, KindValidation)
}

func TestResource_FloorDeleteGuardedByRooms(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()
	fx := seedRoomParents(t, reg)

	room, err := reg.Rooms.Create(ctx, &models.Room{
		RoomNumber:   "101",
		FloorID:      fx.floor.ID,
		RoomClassID:  fx.roomClass.ID,
		RoomStatusID: fx.status.ID,
	})
	require.NoError(t, err)

	err = reg.Floors.Delete(ctx, fx.floor.ID)
	requireKind(t, err, KindInUse)
	assert.Equal(t, "Floor has one or more rooms", AsAppError(err).Message)

	require.NoError(t, reg.Rooms.Delete(ctx, room.ID))
	require.NoError(t, reg.Floors.Delete(ctx, fx.floor.ID))

	_, err = reg.Floors.Get(ctx, fx.floor.ID)
	requireKind(t, err, KindNotFound)
}

func TestResource_RoomRejectsUnknownReferences(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()
	fx := seedRoomParents(t, reg)

	_, err := reg.Rooms.Create(ctx, &models.Room{
		RoomNumber:   "101",
		FloorID:      "nope",
		RoomClassID:  fx.roomClass.ID,
		RoomStatusID: fx.status.ID,
	})
	requireKind(t, err, KindValidation)
	assert.Equal(t, []string{"floor_id 'nope' does not exist"}, AsAppError(err).Details)
}

func TestResource_RoomStatusKeepsOneAvailable(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	first, err := reg.RoomStatuses.Create(ctx, &models.RoomStatus{StatusName: "Available", IsAvailable: true})
	require.NoError(t, err)
	blocked, err := reg.RoomStatuses.Create(ctx, &models.RoomStatus{StatusName: "Blocked"})
	require.NoError(t, err)

	err = reg.RoomStatuses.Delete(ctx, first.ID)
	requireKind(t, err, KindInUse)

	second, err := reg.RoomStatuses.Create(ctx, &models.RoomStatus{StatusName: "Vacant clean", IsAvailable: true})
	require.NoError(t, err)

	require.NoError(t, reg.RoomStatuses.Delete(ctx, first.ID))
	requireKind(t, reg.RoomStatuses.Delete(ctx, second.ID), KindInUse)
	require.NoError(t, reg.RoomStatuses.Delete(ctx, blocked.ID))
}

func TestResource_RoomClassEdges(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	king, err := reg.BedTypes.Create(ctx, &models.BedType{BedTypeName: "King"})
	require.NoError(t, err)
	twin, err := reg.BedTypes.Create(ctx, &models.BedType{BedTypeName: "Twin"})
	require.NoError(t, err)
	wifi, err := reg.Features.Create(ctx, &models.Feature{FeatureName: "Wi-Fi"})
	require.NoError(t, err)

	class, err := reg.RoomClasses.Create(ctx, &models.RoomClass{
		ClassName: "Suite",
		BasePrice: 300,
		BedTypes:  []models.RoomClassBedType{{BedTypeID: king.ID, NumBeds: 1}},
		Features:  []models.RoomClassFeature{{FeatureID: wifi.ID}},
	})
	require.NoError(t, err)
	require.Len(t, class.BedTypes, 1)
	require.NotNil(t, class.BedTypes[0].BedType)
	assert.Equal(t, "King", class.BedTypes[0].BedType.BedTypeName)
	require.Len(t, class.Features, 1)
	assert.Equal(t, "Wi-Fi", class.Features[0].Feature.FeatureName)

	requireKind(t, reg.BedTypes.Delete(ctx, king.ID), KindInUse)
	requireKind(t, reg.Features.Delete(ctx, wifi.ID), KindInUse)

	updated, err := reg.RoomClasses.Update(ctx, class.ID, &models.RoomClass{
		ClassName: "Suite",
		BasePrice: 320,
		BedTypes:  []models.RoomClassBedType{{BedTypeID: twin.ID, NumBeds: 2}},
	})
	require.NoError(t, err)
	require.Len(t, updated.BedTypes, 1)
	assert.Equal(t, twin.ID, updated.BedTypes[0].BedTypeID)
	assert.Equal(t, 2, updated.BedTypes[0].NumBeds)
	assert.Empty(t, updated.Features)

	require.NoError(t, reg.BedTypes.Delete(ctx, king.ID))
	require.NoError(t, reg.RoomClasses.Delete(ctx, class.ID))
	require.NoError(t, reg.BedTypes.Delete(ctx, twin.ID))
}

func TestResource_RoomClassEdgeValidation(t *testing.T) {
	reg := NewRegistry(newTestDB(t))
	ctx := context.Background()

	king, err := reg.BedTypes.Create(ctx, &models.BedType{BedTypeName: "King"})
	require.NoError(t, err)

	_, err = reg.RoomClasses.Create(ctx, &models.RoomClass{
		ClassName: "Suite",
		BasePrice: 300,
		BedTypes: []models.RoomClassBedType{
			{BedTypeID: king.ID, NumBeds: 1},
			{BedTypeID: king.ID, NumBeds: 2},
		},
	})
	requireKind(t, err, KindValidation)

	_, err = reg.RoomClasses.Create(ctx, &models.RoomClass{
		ClassName: "Suite",
		BasePrice: 300,
		Features:  []models.RoomClassFeature{{FeatureID: "ghost"}},
	})
	requireKind(t, err, KindValidation)
	assert.Equal(t, []string{"feature_id 'ghost' does not exist"}, AsAppError(err).Details)

	page, err := reg.RoomClasses.List(ctx, utils.NormalizePageQuery("", "", ""))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

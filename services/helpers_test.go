package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotel-admin/config"
	"hotel-admin/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := config.OpenDatabase("file:"+name+"?mode=memory&cache=shared", "silent")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

type fixtures struct {
	floor     *models.Floor
	roomClass *models.RoomClass
	status    *models.RoomStatus
}

func seedRoomParents(t *testing.T, reg *Registry) fixtures {
	t.Helper()
	ctx := context.Background()

	floor, err := reg.Floors.Create(ctx, &models.Floor{FloorNumber: 1})
	require.NoError(t, err)
	class, err := reg.RoomClasses.Create(ctx, &models.RoomClass{ClassName: "Deluxe", BasePrice: 120})
	require.NoError(t, err)
	status, err := reg.RoomStatuses.Create(ctx, &models.RoomStatus{StatusName: "Available", IsAvailable: true})
	require.NoError(t, err)

	return fixtures{floor: floor, roomClass: class, status: status}
}

func requireKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, AsAppError(err).Kind, "error: %v", err)
}

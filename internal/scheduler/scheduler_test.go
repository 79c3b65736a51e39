package scheduler

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kelolalabs/kelola/internal/clock"
	rentaldomain "github.com/kelolalabs/kelola/internal/rental/domain"
	"github.com/kelolalabs/kelola/internal/reportcache"
	roomdomain "github.com/kelolalabs/kelola/internal/room/domain"
)

func newTestScheduler(t *testing.T) (*Scheduler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&roomdomain.Room{}, &rentaldomain.Rental{}))

	logger := zap.NewNop()
	return &Scheduler{
		db:    db,
		log:   logger,
		clock: clock.New(),
		cache: reportcache.NewWithClient(nil, logger),
	}, db
}

func seedRoom(t *testing.T, db *gorm.DB, id int64, status roomdomain.RoomStatus) {
	t.Helper()
	require.NoError(t, db.Create(&roomdomain.Room{
		ID:         id,
		PropertyID: 1,
		Name:       "room",
		Status:     status,
		Price:      decimal.NewFromInt(500000),
	}).Error)
}

func seedRental(t *testing.T, db *gorm.DB, id, roomID int64, status rentaldomain.RentalStatus) {
	t.Helper()
	require.NoError(t, db.Create(&rentaldomain.Rental{
		ID:           id,
		RoomID:       roomID,
		TenantID:     1,
		MoveIn:       "2024-01",
		MonthlyPrice: decimal.NewFromInt(500000),
		Status:       status,
	}).Error)
}

func roomStatus(t *testing.T, db *gorm.DB, id int64) roomdomain.RoomStatus {
	t.Helper()
	var room roomdomain.Room
	require.NoError(t, db.First(&room, "id = ?", id).Error)
	return room.Status
}

func TestSyncRoomStatuses(t *testing.T) {
	s, db := newTestScheduler(t)
	ctx := context.Background()

	// Room 1: active rental but marked available -> should become occupied.
	seedRoom(t, db, 1, roomdomain.StatusAvailable)
	seedRental(t, db, 101, 1, rentaldomain.StatusActive)

	// Room 2: no active rental but marked occupied -> should become available.
	seedRoom(t, db, 2, roomdomain.StatusOccupied)
	seedRental(t, db, 102, 2, rentaldomain.StatusCompleted)

	// Room 3: already consistent -> untouched.
	seedRoom(t, db, 3, roomdomain.StatusOccupied)
	seedRental(t, db, 103, 3, rentaldomain.StatusActive)

	// Room 4: maintenance is manual, never reconciled.
	seedRoom(t, db, 4, roomdomain.StatusMaintenance)
	seedRental(t, db, 104, 4, rentaldomain.StatusActive)

	fixed, err := s.SyncRoomStatuses(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, fixed)

	require.Equal(t, roomdomain.StatusOccupied, roomStatus(t, db, 1))
	require.Equal(t, roomdomain.StatusAvailable, roomStatus(t, db, 2))
	require.Equal(t, roomdomain.StatusOccupied, roomStatus(t, db, 3))
	require.Equal(t, roomdomain.StatusMaintenance, roomStatus(t, db, 4))
}

func TestSyncRoomStatusesIdempotent(t *testing.T) {
	s, db := newTestScheduler(t)
	ctx := context.Background()

	seedRoom(t, db, 1, roomdomain.StatusAvailable)
	seedRental(t, db, 101, 1, rentaldomain.StatusActive)

	fixed, err := s.SyncRoomStatuses(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, fixed)

	fixed, err = s.SyncRoomStatuses(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, fixed)
}

func TestSyncRoomStatusesEmpty(t *testing.T) {
	s, _ := newTestScheduler(t)

	fixed, err := s.SyncRoomStatuses(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, fixed)
}

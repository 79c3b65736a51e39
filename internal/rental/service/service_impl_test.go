package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	paymentdomain "github.com/kelolalabs/kelola/internal/payment/domain"
	propertydomain "github.com/kelolalabs/kelola/internal/property/domain"
	"github.com/kelolalabs/kelola/internal/rental/domain"
	rentalrepo "github.com/kelolalabs/kelola/internal/rental/repository"
	"github.com/kelolalabs/kelola/internal/reportcache"
	roomdomain "github.com/kelolalabs/kelola/internal/room/domain"
	roomrepo "github.com/kelolalabs/kelola/internal/room/repository"
	tenantdomain "github.com/kelolalabs/kelola/internal/tenant/domain"
	tenantrepo "github.com/kelolalabs/kelola/internal/tenant/repository"
)

type fixture struct {
	svc        domain.Service
	db         *gorm.DB
	roomID     string
	secondRoom string
	tenantID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&propertydomain.Property{},
		&roomdomain.Room{},
		&tenantdomain.Tenant{},
		&domain.Rental{},
		&paymentdomain.Payment{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	logger := zap.NewNop()

	property := &propertydomain.Property{ID: node.Generate().Int64(), Name: "Griya Asri", Address: "Jl. Melati 1"}
	require.NoError(t, db.Create(property).Error)

	room := &roomdomain.Room{
		ID:         node.Generate().Int64(),
		PropertyID: property.ID,
		Name:       "A1",
		Status:     roomdomain.StatusAvailable,
		Price:      decimal.NewFromInt(500000),
	}
	require.NoError(t, db.Create(room).Error)

	second := &roomdomain.Room{
		ID:         node.Generate().Int64(),
		PropertyID: property.ID,
		Name:       "A2",
		Status:     roomdomain.StatusAvailable,
		Price:      decimal.NewFromInt(650000),
	}
	require.NoError(t, db.Create(second).Error)

	tenant := &tenantdomain.Tenant{
		ID:         node.Generate().Int64(),
		Name:       "Budi",
		Phone:      "0812000111",
		KtpAddress: "Jl. Kenanga 2",
	}
	require.NoError(t, db.Create(tenant).Error)

	svc := New(Params{
		DB:         db,
		Log:        logger,
		GenID:      node,
		Repo:       rentalrepo.Provide(),
		RoomRepo:   roomrepo.Provide(),
		TenantRepo: tenantrepo.Provide(),
		Cache:      reportcache.NewWithClient(nil, logger),
	})

	return &fixture{
		svc:        svc,
		db:         db,
		roomID:     snowflake.ID(room.ID).String(),
		secondRoom: snowflake.ID(second.ID).String(),
		tenantID:   snowflake.ID(tenant.ID).String(),
	}
}

func (f *fixture) roomStatus(t *testing.T, id string) roomdomain.RoomStatus {
	t.Helper()
	parsed, err := snowflake.ParseString(id)
	require.NoError(t, err)
	var room roomdomain.Room
	require.NoError(t, f.db.First(&room, "id = ?", parsed.Int64()).Error)
	return room.Status
}

func TestCreateRentalOccupiesRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Create(ctx, domain.CreateRequest{
		RoomID:       f.roomID,
		TenantID:     f.tenantID,
		MoveIn:       "2024-01",
		MonthlyPrice: "500000",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, resp.Status)
	require.Equal(t, "Budi", resp.TenantName)
	require.Equal(t, "A1", resp.RoomName)
	require.Equal(t, "500000", resp.MonthlyPrice)

	require.Equal(t, roomdomain.StatusOccupied, f.roomStatus(t, f.roomID))
}

func TestCreateRentalRejectsOccupiedRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, domain.CreateRequest{
		RoomID:       f.roomID,
		TenantID:     f.tenantID,
		MoveIn:       "2024-01",
		MonthlyPrice: "500000",
	})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, domain.CreateRequest{
		RoomID:       f.roomID,
		TenantID:     f.tenantID,
		MoveIn:       "2024-02",
		MonthlyPrice: "500000",
	})
	require.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestCreateRentalValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  domain.CreateRequest
		want error
	}{
		{
			name: "bad move-in month",
			req:  domain.CreateRequest{RoomID: f.roomID, TenantID: f.tenantID, MoveIn: "2024-1", MonthlyPrice: "500000"},
			want: domain.ErrInvalidMonth,
		},
		{
			name: "negative price",
			req:  domain.CreateRequest{RoomID: f.roomID, TenantID: f.tenantID, MoveIn: "2024-01", MonthlyPrice: "-5"},
			want: domain.ErrInvalidPrice,
		},
		{
			name: "unparseable price",
			req:  domain.CreateRequest{RoomID: f.roomID, TenantID: f.tenantID, MoveIn: "2024-01", MonthlyPrice: "abc"},
			want: domain.ErrInvalidPrice,
		},
		{
			name: "unknown status",
			req:  domain.CreateRequest{RoomID: f.roomID, TenantID: f.tenantID, MoveIn: "2024-01", MonthlyPrice: "500000", Status: "paused"},
			want: domain.ErrInvalidStatus,
		},
		{
			name: "bad room id",
			req:  domain.CreateRequest{RoomID: "???", TenantID: f.tenantID, MoveIn: "2024-01", MonthlyPrice: "500000"},
			want: domain.ErrInvalidRoom,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpdateRentalRoomMoveFlipsBothRooms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domain.CreateRequest{
		RoomID:       f.roomID,
		TenantID:     f.tenantID,
		MoveIn:       "2024-01",
		MonthlyPrice: "500000",
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, domain.UpdateRequest{
		ID:     created.ID,
		RoomID: &f.secondRoom,
	})
	require.NoError(t, err)
	require.Equal(t, f.secondRoom, updated.RoomID)
	require.Equal(t, "A2", updated.RoomName)

	require.Equal(t, roomdomain.StatusAvailable, f.roomStatus(t, f.roomID))
	require.Equal(t, roomdomain.StatusOccupied, f.roomStatus(t, f.secondRoom))
}

func TestUpdateRentalStatusFreesRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domain.CreateRequest{
		RoomID:       f.roomID,
		TenantID:     f.tenantID,
		MoveIn:       "2024-01",
		MonthlyPrice: "500000",
	})
	require.NoError(t, err)

	resp, err := f.svc.UpdateStatus(ctx, domain.UpdateStatusRequest{
		ID:     created.ID,
		Status: "completed",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, resp.Status)
	require.Equal(t, roomdomain.StatusAvailable, f.roomStatus(t, f.roomID))

	// Flipping between two inactive states leaves the room alone.
	_, err = f.svc.Create(ctx, domain.CreateRequest{
		RoomID:       f.roomID,
		TenantID:     f.tenantID,
		MoveIn:       "2024-02",
		MonthlyPrice: "500000",
	})
	require.NoError(t, err)

	resp, err = f.svc.UpdateStatus(ctx, domain.UpdateStatusRequest{
		ID:     created.ID,
		Status: "terminated",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusTerminated, resp.Status)
	require.Equal(t, roomdomain.StatusOccupied, f.roomStatus(t, f.roomID))
}

func TestDeleteActiveRentalFreesRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domain.CreateRequest{
		RoomID:       f.roomID,
		TenantID:     f.tenantID,
		MoveIn:       "2024-01",
		MonthlyPrice: "500000",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))
	require.Equal(t, roomdomain.StatusAvailable, f.roomStatus(t, f.roomID))

	_, err = f.svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListRentalsFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domain.CreateRequest{
		RoomID:       f.roomID,
		TenantID:     f.tenantID,
		MoveIn:       "2024-01",
		MonthlyPrice: "500000",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, domain.UpdateStatusRequest{ID: created.ID, Status: "completed"})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, domain.CreateRequest{
		RoomID:       f.secondRoom,
		TenantID:     f.tenantID,
		MoveIn:       "2024-03",
		MonthlyPrice: "650000",
	})
	require.NoError(t, err)

	all, err := f.svc.List(ctx, domain.ListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	active, err := f.svc.List(ctx, domain.ListRequest{Status: "active"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, domain.StatusActive, active[0].Status)

	byTenant, err := f.svc.List(ctx, domain.ListRequest{TenantID: f.tenantID})
	require.NoError(t, err)
	require.Len(t, byTenant, 2)

	_, err = f.svc.List(ctx, domain.ListRequest{Status: "bogus"})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

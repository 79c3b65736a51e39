package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kelolalabs/kelola/internal/arrears"
	paymentdomain "github.com/kelolalabs/kelola/internal/payment/domain"
	paymentrepo "github.com/kelolalabs/kelola/internal/payment/repository"
	propertydomain "github.com/kelolalabs/kelola/internal/property/domain"
	rentaldomain "github.com/kelolalabs/kelola/internal/rental/domain"
	rentalrepo "github.com/kelolalabs/kelola/internal/rental/repository"
	"github.com/kelolalabs/kelola/internal/report/domain"
	"github.com/kelolalabs/kelola/internal/reportcache"
	roomdomain "github.com/kelolalabs/kelola/internal/room/domain"
	tenantdomain "github.com/kelolalabs/kelola/internal/tenant/domain"
)

type reportFixture struct {
	svc  domain.Service
	db   *gorm.DB
	node *snowflake.Node
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&propertydomain.Property{},
		&roomdomain.Room{},
		&tenantdomain.Tenant{},
		&rentaldomain.Rental{},
		&paymentdomain.Payment{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	logger := zap.NewNop()

	svc := New(Params{
		DB:          db,
		Log:         logger,
		RentalRepo:  rentalrepo.Provide(),
		PaymentRepo: paymentrepo.Provide(),
		Cache:       reportcache.NewWithClient(nil, logger),
	})

	return &reportFixture{svc: svc, db: db, node: node}
}

// seedRental creates a full property/room/tenant/rental chain and
// returns the rental ID.
func (f *reportFixture) seedRental(t *testing.T, tenantName, moveIn, price string, status rentaldomain.RentalStatus) int64 {
	t.Helper()

	property := &propertydomain.Property{ID: f.node.Generate().Int64(), Name: "Griya Asri", Address: "Jl. Melati 1"}
	require.NoError(t, f.db.Create(property).Error)

	room := &roomdomain.Room{
		ID:         f.node.Generate().Int64(),
		PropertyID: property.ID,
		Name:       "A1",
		Status:     roomdomain.StatusOccupied,
		Price:      decimal.RequireFromString(price),
	}
	require.NoError(t, f.db.Create(room).Error)

	tenant := &tenantdomain.Tenant{
		ID:         f.node.Generate().Int64(),
		Name:       tenantName,
		Phone:      "0812000111",
		KtpAddress: "Jl. Kenanga 2",
	}
	require.NoError(t, f.db.Create(tenant).Error)

	rental := &rentaldomain.Rental{
		ID:           f.node.Generate().Int64(),
		RoomID:       room.ID,
		TenantID:     tenant.ID,
		MoveIn:       moveIn,
		MonthlyPrice: decimal.RequireFromString(price),
		Status:       status,
	}
	require.NoError(t, f.db.Create(rental).Error)
	return rental.ID
}

func (f *reportFixture) seedPayment(t *testing.T, rentalID int64, amount, forMonth string) {
	t.Helper()
	require.NoError(t, f.db.Create(&paymentdomain.Payment{
		ID:       f.node.Generate().Int64(),
		RentalID: rentalID,
		Amount:   decimal.RequireFromString(amount),
		ForMonth: forMonth,
	}).Error)
}

func asOfDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestPaymentStatusBuckets(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	behindID := f.seedRental(t, "Budi", "2024-01", "500000", rentaldomain.StatusActive)
	f.seedPayment(t, behindID, "500000", "2024-01")

	currentID := f.seedRental(t, "Sari", "2024-01", "500000", rentaldomain.StatusActive)
	f.seedPayment(t, currentID, "500000", "2024-01")
	f.seedPayment(t, currentID, "500000", "2024-02")
	f.seedPayment(t, currentID, "500000", "2024-03")

	overpaidID := f.seedRental(t, "Wati", "2024-01", "500000", rentaldomain.StatusActive)
	f.seedPayment(t, overpaidID, "500000", "2024-01")
	f.seedPayment(t, overpaidID, "500000", "2024-02")
	f.seedPayment(t, overpaidID, "500000", "2024-03")
	f.seedPayment(t, overpaidID, "2000000", "2024-04")

	// Completed rentals never enter the report.
	f.seedRental(t, "Joko", "2023-01", "500000", rentaldomain.StatusCompleted)

	report, err := f.svc.PaymentStatus(ctx, asOfDate(2024, time.April, 10))
	require.NoError(t, err)

	require.Len(t, report.Behind, 1)
	require.Len(t, report.Current, 1)
	require.Len(t, report.Overpaid, 1)
	require.Empty(t, report.Errors)

	behind := report.Behind[0]
	require.Equal(t, "Budi", behind.TenantName)
	require.Equal(t, "Griya Asri", behind.PropertyName)
	require.Equal(t, 3, behind.BillableMonthCount)
	require.True(t, behind.Balance.Equal(decimal.NewFromInt(-1000000)))
	require.NotNil(t, behind.LastPaidMonth)
	require.Equal(t, "2024-01", behind.LastPaidMonth.String())

	require.Equal(t, "Sari", report.Current[0].TenantName)
	require.Equal(t, "Wati", report.Overpaid[0].TenantName)

	require.True(t, report.TotalOutstanding.Equal(decimal.NewFromInt(1000000)))
	require.True(t, report.TotalOverpaid.Equal(decimal.NewFromInt(2000000)))
}

func TestPaymentStatusIsolatesBadContracts(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	badID := f.seedRental(t, "Rusak", "garbage", "500000", rentaldomain.StatusActive)

	goodID := f.seedRental(t, "Budi", "2024-01", "500000", rentaldomain.StatusActive)
	f.seedPayment(t, goodID, "1500000", "2024-01")

	report, err := f.svc.PaymentStatus(ctx, asOfDate(2024, time.April, 10))
	require.NoError(t, err)

	require.Len(t, report.Errors, 1)
	require.Equal(t, snowflake.ID(badID).String(), report.Errors[0].RentalID)
	require.Len(t, report.Current, 1)
	require.Equal(t, "Budi", report.Current[0].TenantName)
}

func TestRentalDetail(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	rentalID := f.seedRental(t, "Budi", "2024-01", "500000", rentaldomain.StatusActive)
	f.seedPayment(t, rentalID, "500000", "2024-01")
	f.seedPayment(t, rentalID, "250000", "2024-02")

	detail, err := f.svc.RentalDetail(ctx, snowflake.ID(rentalID).String(), asOfDate(2024, time.April, 10))
	require.NoError(t, err)

	require.Equal(t, "Budi", detail.Entry.TenantName)
	require.Equal(t, arrears.BucketBehind, detail.Entry.Bucket)
	require.True(t, detail.Entry.TotalPaid.Equal(decimal.NewFromInt(750000)))

	require.Len(t, detail.Payments, 2)
	// Oldest month first.
	require.Equal(t, "2024-01", detail.Payments[0].ForMonth)
	require.Equal(t, "2024-02", detail.Payments[1].ForMonth)
}

func TestRentalDetailErrors(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	_, err := f.svc.RentalDetail(ctx, "not-a-number", asOfDate(2024, time.April, 10))
	require.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = f.svc.RentalDetail(ctx, "12345", asOfDate(2024, time.April, 10))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportPaymentStatusXLSX(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	rentalID := f.seedRental(t, "Budi", "2024-01", "500000", rentaldomain.StatusActive)
	f.seedPayment(t, rentalID, "500000", "2024-01")

	export, err := f.svc.ExportPaymentStatusXLSX(ctx, asOfDate(2024, time.April, 10))
	require.NoError(t, err)
	require.Contains(t, export.Filename, "payment-status-2024-04")
	require.NotEmpty(t, export.Data)

	// The workbook must open and contain the tenant row.
	wb, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Payment Status")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 2)
	require.Equal(t, "Tenant", rows[0][0])
	require.Equal(t, "Budi", rows[1][0])
}

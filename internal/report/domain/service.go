package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kelolalabs/kelola/internal/arrears"
)

type Service interface {
	// PaymentStatus evaluates every active rental as of the given
	// instant and buckets the results.
	PaymentStatus(ctx context.Context, asOf time.Time) (*StatusReport, error)

	// RentalDetail returns one rental's payment history together with
	// its computed payment status.
	RentalDetail(ctx context.Context, id string, asOf time.Time) (*RentalDetail, error)

	// ExportPaymentStatusXLSX renders the status report as a
	// spreadsheet for the landlord's bookkeeping.
	ExportPaymentStatusXLSX(ctx context.Context, asOf time.Time) (*Export, error)
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)

// StatusEntry is one rental's computed status plus the display fields
// the report table shows.
type StatusEntry struct {
	arrears.PaymentStatus
	RoomName      string         `json:"room_name"`
	PropertyName  string         `json:"property_name"`
	TenantName    string         `json:"tenant_name"`
	TenantPhone   string         `json:"tenant_phone"`
	LastPaidMonth *arrears.Month `json:"last_paid_month,omitempty"`
}

type StatusReport struct {
	AsOf             time.Time             `json:"as_of"`
	Behind           []StatusEntry         `json:"behind"`
	Current          []StatusEntry         `json:"current"`
	Overpaid         []StatusEntry         `json:"overpaid"`
	Errors           []arrears.RentalError `json:"errors,omitempty"`
	TotalOutstanding decimal.Decimal       `json:"total_outstanding"`
	TotalOverpaid    decimal.Decimal       `json:"total_overpaid"`
}

type PaymentLine struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	ForMonth  string    `json:"for_month"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RentalDetail struct {
	Entry    StatusEntry   `json:"rental"`
	Payments []PaymentLine `json:"payments"`
}

type Export struct {
	Filename string
	Data     []byte
}

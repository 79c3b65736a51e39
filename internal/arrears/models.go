package arrears

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidContract marks rental data that cannot be evaluated:
	// an unparseable move-in month or a negative monthly price.
	ErrInvalidContract = errors.New("invalid_contract")

	// ErrDataIntegrity marks payment rows that do not belong to the
	// rental under evaluation, or carry unusable amounts. It points at
	// a defect in whatever loaded the data, not at user input.
	ErrDataIntegrity = errors.New("data_integrity")
)

type RentalStatus string

const (
	RentalActive     RentalStatus = "active"
	RentalCompleted  RentalStatus = "completed"
	RentalTerminated RentalStatus = "terminated"
	RentalCancelled  RentalStatus = "cancelled"
)

// Rental is the collaborator-supplied contract shape. MoveIn and
// MonthlyPrice arrive as raw strings ("YYYY-MM" resp. a decimal) and
// are parsed by the calculator so malformed rows surface as
// ErrInvalidContract instead of silently skewing a report.
type Rental struct {
	ID           string `json:"id"`
	MoveIn       string `json:"move_in"`
	MoveOut      string `json:"move_out"`
	MonthlyPrice string `json:"monthly_price"`
	Status       RentalStatus `json:"status"`
}

// Payment is one recorded payment. Several payments may share a
// ForMonth; they are additive within that month.
type Payment struct {
	ID       string `json:"id"`
	RentalID string `json:"rental_id"`
	Amount   string `json:"amount"`
	ForMonth string `json:"for_month"`
}

type Coverage string

const (
	CoverageUnpaid  Coverage = "unpaid"
	CoveragePartial Coverage = "partial"
	CoverageCovered Coverage = "covered"
)

// MonthCoverage classifies a single billable month.
type MonthCoverage struct {
	Month          Month           `json:"month"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	Classification Coverage        `json:"classification"`
	Remaining      decimal.Decimal `json:"remaining"`
}

// PartialMonth is a billable month whose payments fall short of the
// monthly price.
type PartialMonth struct {
	Month     Month           `json:"month"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
}

type Bucket string

const (
	BucketBehind   Bucket = "behind"
	BucketCurrent  Bucket = "current"
	BucketOverpaid Bucket = "overpaid"
)

// PaymentStatus is the computed payment health of one rental.
type PaymentStatus struct {
	Rental             Rental          `json:"rental"`
	MonthlyPrice       decimal.Decimal `json:"monthly_price"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	BillableMonthCount int             `json:"billable_month_count"`
	ExpectedTotal      decimal.Decimal `json:"expected_total"`
	Balance            decimal.Decimal `json:"balance"`
	Months             []MonthCoverage `json:"months"`
	MissingMonths      []Month         `json:"missing_months"`
	PartialMonths      []PartialMonth  `json:"partial_months"`
	Bucket             Bucket          `json:"bucket"`
}

// RentalError records a rental that was excluded from a report.
type RentalError struct {
	RentalID string `json:"rental_id"`
	Err      error  `json:"-"`
	Message  string `json:"message"`
}

// Report buckets every evaluated rental. Bucket order follows the
// input rental order; no additional sorting is applied.
type Report struct {
	Behind           []PaymentStatus `json:"behind"`
	Current          []PaymentStatus `json:"current"`
	Overpaid         []PaymentStatus `json:"overpaid"`
	Errors           []RentalError   `json:"errors,omitempty"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalOverpaid    decimal.Decimal `json:"total_overpaid"`
}

package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one recorded payment against a rental contract. ForMonth
// is the "YYYY-MM" month the money is credited toward, which need not
// be the month it was received. Several payments may target the same
// month; they are additive.
type Payment struct {
	ID        int64           `gorm:"primaryKey"`
	RentalID  int64           `gorm:"index;not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ForMonth  string          `gorm:"size:7;not null;index"`
	Note      *string         `gorm:"size:1000"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Payment) TableName() string { return "payments" }

var (
	ErrInvalidRental = errors.New("invalid_rental")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidMonth  = errors.New("invalid_month")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)

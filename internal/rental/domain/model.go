package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	StatusActive     RentalStatus = "active"
	StatusCompleted  RentalStatus = "completed"
	StatusTerminated RentalStatus = "terminated"
	StatusCancelled  RentalStatus = "cancelled"
)

func (s RentalStatus) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusTerminated, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether the contract currently occupies its room.
func (s RentalStatus) Active() bool { return s == StatusActive }

// Rental is a tenancy contract binding a tenant to a room. MoveIn and
// MoveOut are calendar months in "YYYY-MM" form; billing starts at
// MoveIn. MoveOut is informational and does not cap arrears.
type Rental struct {
	ID           int64           `gorm:"primaryKey"`
	RoomID       int64           `gorm:"index;not null"`
	TenantID     int64           `gorm:"index;not null"`
	MoveIn       string          `gorm:"size:7;not null"`
	MoveOut      string          `gorm:"size:7;not null"`
	MonthlyPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status       RentalStatus    `gorm:"size:16;not null;default:active"`
	Note         *string         `gorm:"size:1000"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Rental) TableName() string { return "rentals" }

var (
	ErrInvalidRoom    = errors.New("invalid_room")
	ErrInvalidTenant  = errors.New("invalid_tenant")
	ErrInvalidMonth   = errors.New("invalid_month")
	ErrInvalidPrice   = errors.New("invalid_price")
	ErrInvalidStatus  = errors.New("invalid_status")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
	ErrRoomUnavailable = errors.New("room_unavailable")
)

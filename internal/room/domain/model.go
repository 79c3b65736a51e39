package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	StatusAvailable   RoomStatus = "available"
	StatusOccupied    RoomStatus = "occupied"
	StatusMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	}
	return false
}

// Room is a rentable unit inside a property.
type Room struct {
	ID         int64           `gorm:"primaryKey"`
	PropertyID int64           `gorm:"index;not null"`
	Name       string          `gorm:"size:255;not null"`
	Status     RoomStatus      `gorm:"size:16;not null;default:available"`
	Price      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Room) TableName() string { return "rooms" }

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidProperty = errors.New("invalid_property")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)

package domain

import (
	"errors"
	"time"
)

// Property is one boarding-house building.
type Property struct {
	ID             int64     `gorm:"primaryKey"`
	Name           string    `gorm:"size:255;not null"`
	Description    *string   `gorm:"size:1000"`
	Address        string    `gorm:"size:500"`
	Gmaps          *string   `gorm:"size:500"`
	ElectricNumber *string   `gorm:"size:64"`
	WaterNumber    *string   `gorm:"size:64"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Property) TableName() string { return "properties" }

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)

package domain

import (
	"errors"
	"time"
)

// Tenant is a person renting (or who has rented) a room.
type Tenant struct {
	ID         int64   `gorm:"primaryKey"`
	Name       string  `gorm:"size:255;not null"`
	Phone      string  `gorm:"size:32;not null"`
	KtpAddress string  `gorm:"size:500;not null"`
	Note       *string `gorm:"size:1000"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Tenant) TableName() string { return "tenants" }

var (
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidPhone      = errors.New("invalid_phone")
	ErrInvalidKtpAddress = errors.New("invalid_ktp_address")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
)

package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, rental *Rental) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Rental, error)
	FindRowByID(ctx context.Context, db *gorm.DB, id int64) (*RentalRow, error)
	ListRows(ctx context.Context, db *gorm.DB, filter ListFilter) ([]RentalRow, error)
	Update(ctx context.Context, db *gorm.DB, rental *Rental) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status RentalStatus) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

type ListFilter struct {
	TenantID *int64
	Status   *RentalStatus
}

// RentalRow is a rental joined with the display fields of its room,
// property, and tenant.
type RentalRow struct {
	Rental
	RoomName     string
	PropertyName string
	TenantName   string
	TenantPhone  string
}

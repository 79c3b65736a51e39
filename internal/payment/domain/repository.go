package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, payment *Payment) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Payment, error)
	FindRowByID(ctx context.Context, db *gorm.DB, id int64) (*PaymentRow, error)
	ListRows(ctx context.Context, db *gorm.DB, rentalID *int64) ([]PaymentRow, error)
	Update(ctx context.Context, db *gorm.DB, payment *Payment) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

// PaymentRow is a payment joined with its rental's display context,
// ordered newest billing month first in list views.
type PaymentRow struct {
	Payment
	MonthlyPrice string
	RoomName     string
	PropertyName string
	TenantName   string
	TenantPhone  string
}

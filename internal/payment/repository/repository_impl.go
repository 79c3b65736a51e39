package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kelolalabs/kelola/internal/payment/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const rowSelect = `payments.*,
	rentals.monthly_price AS monthly_price,
	rooms.name AS room_name,
	properties.name AS property_name,
	tenants.name AS tenant_name,
	tenants.phone AS tenant_phone`

func rowQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("payments").
		Select(rowSelect).
		Joins("JOIN rentals ON rentals.id = payments.rental_id").
		Joins("JOIN rooms ON rooms.id = rentals.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Joins("JOIN tenants ON tenants.id = rentals.tenant_id")
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Payment, error) {
	var p domain.Payment
	err := db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindRowByID(ctx context.Context, db *gorm.DB, id int64) (*domain.PaymentRow, error) {
	var row domain.PaymentRow
	err := rowQuery(ctx, db).Where("payments.id = ?", id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *repo) ListRows(ctx context.Context, db *gorm.DB, rentalID *int64) ([]domain.PaymentRow, error) {
	stmt := rowQuery(ctx, db).Order("payments.for_month desc")
	if rentalID != nil {
		stmt = stmt.Where("payments.rental_id = ?", *rentalID)
	}

	var rows []domain.PaymentRow
	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	if payment == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Save(payment).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Payment{}, "id = ?", id).Error
}

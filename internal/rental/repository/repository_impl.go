package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kelolalabs/kelola/internal/rental/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const rowSelect = `rentals.*,
	rooms.name AS room_name,
	properties.name AS property_name,
	tenants.name AS tenant_name,
	tenants.phone AS tenant_phone`

func rowQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("rentals").
		Select(rowSelect).
		Joins("JOIN rooms ON rooms.id = rentals.room_id").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Joins("JOIN tenants ON tenants.id = rentals.tenant_id")
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, rental *domain.Rental) error {
	return db.WithContext(ctx).Create(rental).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Rental, error) {
	var rental domain.Rental
	err := db.WithContext(ctx).First(&rental, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *repo) FindRowByID(ctx context.Context, db *gorm.DB, id int64) (*domain.RentalRow, error) {
	var row domain.RentalRow
	err := rowQuery(ctx, db).Where("rentals.id = ?", id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *repo) ListRows(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.RentalRow, error) {
	stmt := rowQuery(ctx, db).Order("rentals.created_at asc")
	if filter.TenantID != nil {
		stmt = stmt.Where("rentals.tenant_id = ?", *filter.TenantID)
	}
	if filter.Status != nil {
		stmt = stmt.Where("rentals.status = ?", *filter.Status)
	}

	var rows []domain.RentalRow
	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rental *domain.Rental) error {
	if rental == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Save(rental).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status domain.RentalStatus) error {
	return db.WithContext(ctx).
		Model(&domain.Rental{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Rental{}, "id = ?", id).Error
}

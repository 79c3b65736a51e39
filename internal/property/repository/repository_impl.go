package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kelolalabs/kelola/internal/property/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, property *domain.Property) error {
	return db.WithContext(ctx).Create(property).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Property, error) {
	var p domain.Property
	err := db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Property, error) {
	var items []domain.Property
	err := db.WithContext(ctx).Order("created_at asc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, property *domain.Property) error {
	if property == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Save(property).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Property{}, "id = ?", id).Error
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kelolalabs/kelola/internal/room/domain"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, room *domain.Room) error {
	return db.WithContext(ctx).Create(room).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Room, error) {
	var room domain.Room
	err := db.WithContext(ctx).First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, propertyID *int64) ([]domain.RoomRow, error) {
	var rows []domain.RoomRow
	stmt := db.WithContext(ctx).
		Table("rooms").
		Select("rooms.*, properties.name AS property_name").
		Joins("JOIN properties ON properties.id = rooms.property_id").
		Order("rooms.created_at asc")
	if propertyID != nil {
		stmt = stmt.Where("rooms.property_id = ?", *propertyID)
	}
	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, room *domain.Room) error {
	if room == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Save(room).Error
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status domain.RoomStatus) error {
	return db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Room{}, "id = ?", id).Error
}

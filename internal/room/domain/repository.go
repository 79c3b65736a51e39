package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, room *Room) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Room, error)
	List(ctx context.Context, db *gorm.DB, propertyID *int64) ([]RoomRow, error)
	Update(ctx context.Context, db *gorm.DB, room *Room) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status RoomStatus) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}

// RoomRow is a room joined with its property name for list views.
type RoomRow struct {
	Room
	PropertyName string
}

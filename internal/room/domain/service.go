package domain

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type ListRequest struct {
	PropertyID string
}

type CreateRequest struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Price      string `json:"price"`
}

type UpdateRequest struct {
	ID         string  `json:"id"`
	PropertyID *string `json:"property_id,omitempty"`
	Name       *string `json:"name,omitempty"`
	Status     *string `json:"status,omitempty"`
	Price      *string `json:"price,omitempty"`
}

type Response struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"property_id"`
	PropertyName string    `json:"property_name,omitempty"`
	Name         string    `json:"name"`
	Status       RoomStatus `json:"status"`
	Price        string    `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

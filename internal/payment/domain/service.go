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
	RentalID string
}

type CreateRequest struct {
	RentalID string  `json:"rental_id"`
	Amount   string  `json:"amount"`
	ForMonth string  `json:"for_month"`
	Note     *string `json:"note"`
}

type UpdateRequest struct {
	ID       string  `json:"id"`
	RentalID *string `json:"rental_id,omitempty"`
	Amount   *string `json:"amount,omitempty"`
	ForMonth *string `json:"for_month,omitempty"`
	Note     *string `json:"note,omitempty"`
}

type Response struct {
	ID           string    `json:"id"`
	RentalID     string    `json:"rental_id"`
	Amount       string    `json:"amount"`
	ForMonth     string    `json:"for_month"`
	Note         *string   `json:"note,omitempty"`
	MonthlyPrice string    `json:"monthly_price,omitempty"`
	RoomName     string    `json:"room_name,omitempty"`
	PropertyName string    `json:"property_name,omitempty"`
	TenantName   string    `json:"tenant_name,omitempty"`
	TenantPhone  string    `json:"tenant_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

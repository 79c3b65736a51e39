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
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type ListRequest struct {
	TenantID string
	Status   string
}

type CreateRequest struct {
	RoomID       string  `json:"room_id"`
	TenantID     string  `json:"tenant_id"`
	MoveIn       string  `json:"move_in"`
	MoveOut      string  `json:"move_out"`
	MonthlyPrice string  `json:"monthly_price"`
	Status       string  `json:"status"`
	Note         *string `json:"note"`
}

type UpdateRequest struct {
	ID           string  `json:"id"`
	RoomID       *string `json:"room_id,omitempty"`
	TenantID     *string `json:"tenant_id,omitempty"`
	MoveIn       *string `json:"move_in,omitempty"`
	MoveOut      *string `json:"move_out,omitempty"`
	MonthlyPrice *string `json:"monthly_price,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// UpdateStatusRequest drives contract lifecycle transitions; the
// original application retires contracts this way instead of deleting.
type UpdateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Response struct {
	ID           string       `json:"id"`
	RoomID       string       `json:"room_id"`
	RoomName     string       `json:"room_name,omitempty"`
	PropertyName string       `json:"property_name,omitempty"`
	TenantID     string       `json:"tenant_id"`
	TenantName   string       `json:"tenant_name,omitempty"`
	TenantPhone  string       `json:"tenant_phone,omitempty"`
	MoveIn       string       `json:"move_in"`
	MoveOut      string       `json:"move_out"`
	MonthlyPrice string       `json:"monthly_price"`
	Status       RentalStatus `json:"status"`
	Note         *string      `json:"note,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

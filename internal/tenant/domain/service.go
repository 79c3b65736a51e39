package domain

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	KtpAddress string  `json:"ktp_address"`
	Note       *string `json:"note"`
}

type UpdateRequest struct {
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	KtpAddress *string `json:"ktp_address,omitempty"`
	Note       *string `json:"note,omitempty"`
}

type Response struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	KtpAddress string    `json:"ktp_address"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

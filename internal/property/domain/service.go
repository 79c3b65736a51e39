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
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	Address        string  `json:"address"`
	Gmaps          *string `json:"gmaps"`
	ElectricNumber *string `json:"electric_number"`
	WaterNumber    *string `json:"water_number"`
}

type UpdateRequest struct {
	ID             string  `json:"id"`
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	Address        *string `json:"address,omitempty"`
	Gmaps          *string `json:"gmaps,omitempty"`
	ElectricNumber *string `json:"electric_number,omitempty"`
	WaterNumber    *string `json:"water_number,omitempty"`
}

type Response struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	Address        string    `json:"address"`
	Gmaps          *string   `json:"gmaps,omitempty"`
	ElectricNumber *string   `json:"electric_number,omitempty"`
	WaterNumber    *string   `json:"water_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

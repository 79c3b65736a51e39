package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	propertydomain "github.com/kelolalabs/kelola/internal/property/domain"
	"github.com/kelolalabs/kelola/internal/reportcache"
	"github.com/kelolalabs/kelola/internal/room/domain"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Repo         domain.Repository
	PropertyRepo propertydomain.Repository
	Cache        *reportcache.Cache
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	repo         domain.Repository
	propertyRepo propertydomain.Repository
	genID        *snowflake.Node
	cache        *reportcache.Cache
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("room.service"),
		repo:         p.Repo,
		propertyRepo: p.PropertyRepo,
		genID:        p.GenID,
		cache:        p.Cache,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	propertyID, err := snowflake.ParseString(strings.TrimSpace(req.PropertyID))
	if err != nil {
		return nil, domain.ErrInvalidProperty
	}
	property, err := s.propertyRepo.FindByID(ctx, s.db, propertyID.Int64())
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrInvalidProperty
	}

	status := domain.StatusAvailable
	if trimmed := strings.TrimSpace(req.Status); trimmed != "" {
		status = domain.RoomStatus(trimmed)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:         s.genID.Generate().Int64(),
		PropertyID: propertyID.Int64(),
		Name:       name,
		Status:     status,
		Price:      price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, s.db, room); err != nil {
		return nil, err
	}

	s.cache.Bump(ctx, reportcache.CollectionRooms)
	resp := toResponse(room, property.Name)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	var propertyID *int64
	if trimmed := strings.TrimSpace(req.PropertyID); trimmed != "" {
		parsed, err := snowflake.ParseString(trimmed)
		if err != nil {
			return nil, domain.ErrInvalidProperty
		}
		value := parsed.Int64()
		propertyID = &value
	}

	rows, err := s.repo.List(ctx, s.db, propertyID)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(rows))
	for i := range rows {
		resp = append(resp, toResponse(&rows[i].Room, rows[i].PropertyName))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	roomID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	room, err := s.repo.FindByID(ctx, s.db, roomID.Int64())
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}

	propertyName := ""
	if property, err := s.propertyRepo.FindByID(ctx, s.db, room.PropertyID); err == nil && property != nil {
		propertyName = property.Name
	}

	resp := toResponse(room, propertyName)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	roomID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	room, err := s.repo.FindByID(ctx, s.db, roomID.Int64())
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}

	if req.PropertyID != nil {
		propertyID, err := snowflake.ParseString(strings.TrimSpace(*req.PropertyID))
		if err != nil {
			return nil, domain.ErrInvalidProperty
		}
		property, err := s.propertyRepo.FindByID(ctx, s.db, propertyID.Int64())
		if err != nil {
			return nil, err
		}
		if property == nil {
			return nil, domain.ErrInvalidProperty
		}
		room.PropertyID = propertyID.Int64()
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		room.Name = name
	}
	if req.Status != nil {
		status := domain.RoomStatus(strings.TrimSpace(*req.Status))
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		room.Status = status
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		room.Price = price
	}

	room.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, room); err != nil {
		return nil, err
	}

	s.cache.Bump(ctx, reportcache.CollectionRooms)

	propertyName := ""
	if property, err := s.propertyRepo.FindByID(ctx, s.db, room.PropertyID); err == nil && property != nil {
		propertyName = property.Name
	}
	resp := toResponse(room, propertyName)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	roomID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	room, err := s.repo.FindByID(ctx, s.db, roomID.Int64())
	if err != nil {
		return err
	}
	if room == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, roomID.Int64()); err != nil {
		return err
	}
	s.cache.Bump(ctx, reportcache.CollectionRooms)
	return nil
}

func parsePrice(value string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, domain.ErrInvalidPrice
	}
	return price, nil
}

func toResponse(room *domain.Room, propertyName string) domain.Response {
	return domain.Response{
		ID:           snowflake.ID(room.ID).String(),
		PropertyID:   snowflake.ID(room.PropertyID).String(),
		PropertyName: propertyName,
		Name:         room.Name,
		Status:       room.Status,
		Price:        room.Price.String(),
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
}

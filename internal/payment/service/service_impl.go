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

	"github.com/kelolalabs/kelola/internal/arrears"
	"github.com/kelolalabs/kelola/internal/payment/domain"
	rentaldomain "github.com/kelolalabs/kelola/internal/rental/domain"
	"github.com/kelolalabs/kelola/internal/reportcache"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	RentalRepo rentaldomain.Repository
	Cache      *reportcache.Cache
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	repo       domain.Repository
	rentalRepo rentaldomain.Repository
	genID      *snowflake.Node
	cache      *reportcache.Cache
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("payment.service"),
		repo:       p.Repo,
		rentalRepo: p.RentalRepo,
		genID:      p.GenID,
		cache:      p.Cache,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	rentalID, err := snowflake.ParseString(strings.TrimSpace(req.RentalID))
	if err != nil {
		return nil, domain.ErrInvalidRental
	}
	rental, err := s.rentalRepo.FindByID(ctx, s.db, rentalID.Int64())
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrInvalidRental
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	forMonth, err := validateMonth(req.ForMonth)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Payment{
		ID:        s.genID.Generate().Int64(),
		RentalID:  rentalID.Int64(),
		Amount:    amount,
		ForMonth:  forMonth,
		Note:      trimPtr(req.Note),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		return nil, err
	}

	s.cache.Bump(ctx, reportcache.CollectionPayments)
	return s.respond(ctx, p.ID)
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	var rentalID *int64
	if trimmed := strings.TrimSpace(req.RentalID); trimmed != "" {
		parsed, err := snowflake.ParseString(trimmed)
		if err != nil {
			return nil, domain.ErrInvalidRental
		}
		value := parsed.Int64()
		rentalID = &value
	}

	rows, err := s.repo.ListRows(ctx, s.db, rentalID)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(rows))
	for i := range rows {
		resp = append(resp, toResponse(&rows[i]))
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	paymentID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	row, err := s.repo.FindRowByID(ctx, s.db, paymentID.Int64())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(row)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	paymentID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	p, err := s.repo.FindByID(ctx, s.db, paymentID.Int64())
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if req.RentalID != nil {
		rentalID, err := snowflake.ParseString(strings.TrimSpace(*req.RentalID))
		if err != nil {
			return nil, domain.ErrInvalidRental
		}
		rental, err := s.rentalRepo.FindByID(ctx, s.db, rentalID.Int64())
		if err != nil {
			return nil, err
		}
		if rental == nil {
			return nil, domain.ErrInvalidRental
		}
		p.RentalID = rentalID.Int64()
	}
	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		p.Amount = amount
	}
	if req.ForMonth != nil {
		forMonth, err := validateMonth(*req.ForMonth)
		if err != nil {
			return nil, err
		}
		p.ForMonth = forMonth
	}
	if req.Note != nil {
		p.Note = trimPtr(req.Note)
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, p); err != nil {
		return nil, err
	}

	s.cache.Bump(ctx, reportcache.CollectionPayments)
	return s.respond(ctx, p.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	paymentID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	p, err := s.repo.FindByID(ctx, s.db, paymentID.Int64())
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, paymentID.Int64()); err != nil {
		return err
	}
	s.cache.Bump(ctx, reportcache.CollectionPayments)
	return nil
}

func (s *Service) respond(ctx context.Context, id int64) (*domain.Response, error) {
	row, err := s.repo.FindRowByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(row)
	return &resp, nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || amount.IsNegative() {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	return amount, nil
}

func validateMonth(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) != 7 {
		return "", domain.ErrInvalidMonth
	}
	if _, err := arrears.ParseMonth(trimmed); err != nil {
		return "", domain.ErrInvalidMonth
	}
	return trimmed, nil
}

func toResponse(row *domain.PaymentRow) domain.Response {
	return domain.Response{
		ID:           snowflake.ID(row.ID).String(),
		RentalID:     snowflake.ID(row.RentalID).String(),
		Amount:       row.Amount.String(),
		ForMonth:     row.ForMonth,
		Note:         row.Note,
		MonthlyPrice: row.MonthlyPrice,
		RoomName:     row.RoomName,
		PropertyName: row.PropertyName,
		TenantName:   row.TenantName,
		TenantPhone:  row.TenantPhone,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

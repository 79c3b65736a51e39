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
	"github.com/kelolalabs/kelola/internal/rental/domain"
	"github.com/kelolalabs/kelola/internal/reportcache"
	roomdomain "github.com/kelolalabs/kelola/internal/room/domain"
	tenantdomain "github.com/kelolalabs/kelola/internal/tenant/domain"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	RoomRepo   roomdomain.Repository
	TenantRepo tenantdomain.Repository
	Cache      *reportcache.Cache
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	repo       domain.Repository
	roomRepo   roomdomain.Repository
	tenantRepo tenantdomain.Repository
	genID      *snowflake.Node
	cache      *reportcache.Cache
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("rental.service"),
		repo:       p.Repo,
		roomRepo:   p.RoomRepo,
		tenantRepo: p.TenantRepo,
		genID:      p.GenID,
		cache:      p.Cache,
	}
}

// Create inserts the contract and, for active contracts, marks the room
// occupied inside the same transaction. The original system did these
// as two independent writes and could strand a room on failure.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	roomID, err := snowflake.ParseString(strings.TrimSpace(req.RoomID))
	if err != nil {
		return nil, domain.ErrInvalidRoom
	}
	tenantID, err := snowflake.ParseString(strings.TrimSpace(req.TenantID))
	if err != nil {
		return nil, domain.ErrInvalidTenant
	}

	moveIn, err := validateMonth(req.MoveIn)
	if err != nil {
		return nil, err
	}
	moveOut, err := validateOptionalMonth(req.MoveOut)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(req.MonthlyPrice)
	if err != nil {
		return nil, err
	}

	status := domain.StatusActive
	if trimmed := strings.TrimSpace(req.Status); trimmed != "" {
		status = domain.RentalStatus(trimmed)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
	}

	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID.Int64())
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrInvalidTenant
	}

	now := time.Now().UTC()
	rental := &domain.Rental{
		ID:           s.genID.Generate().Int64(),
		RoomID:       roomID.Int64(),
		TenantID:     tenantID.Int64(),
		MoveIn:       moveIn,
		MoveOut:      moveOut,
		MonthlyPrice: price,
		Status:       status,
		Note:         trimPtr(req.Note),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := s.roomRepo.FindByID(ctx, tx, roomID.Int64())
		if err != nil {
			return err
		}
		if room == nil {
			return domain.ErrInvalidRoom
		}
		if status.Active() && room.Status != roomdomain.StatusAvailable {
			return domain.ErrRoomUnavailable
		}

		if err := s.repo.Create(ctx, tx, rental); err != nil {
			return err
		}
		if status.Active() {
			return s.roomRepo.UpdateStatus(ctx, tx, room.ID, roomdomain.StatusOccupied)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Bump(ctx, reportcache.CollectionRentals, reportcache.CollectionRooms)
	return s.respond(ctx, rental.ID)
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	filter := domain.ListFilter{}
	if trimmed := strings.TrimSpace(req.TenantID); trimmed != "" {
		parsed, err := snowflake.ParseString(trimmed)
		if err != nil {
			return nil, domain.ErrInvalidTenant
		}
		value := parsed.Int64()
		filter.TenantID = &value
	}
	if trimmed := strings.TrimSpace(req.Status); trimmed != "" {
		status := domain.RentalStatus(trimmed)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = &status
	}

	rows, err := s.repo.ListRows(ctx, s.db, filter)
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
	rentalID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	row, err := s.repo.FindRowByID(ctx, s.db, rentalID.Int64())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(row)
	return &resp, nil
}

// Update edits contract fields. A room move flips both room statuses
// with the rental update in one transaction.
func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	rentalID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	rental, err := s.repo.FindByID(ctx, s.db, rentalID.Int64())
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrNotFound
	}

	previousRoomID := rental.RoomID

	if req.RoomID != nil {
		roomID, err := snowflake.ParseString(strings.TrimSpace(*req.RoomID))
		if err != nil {
			return nil, domain.ErrInvalidRoom
		}
		rental.RoomID = roomID.Int64()
	}
	if req.TenantID != nil {
		tenantID, err := snowflake.ParseString(strings.TrimSpace(*req.TenantID))
		if err != nil {
			return nil, domain.ErrInvalidTenant
		}
		tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID.Int64())
		if err != nil {
			return nil, err
		}
		if tenant == nil {
			return nil, domain.ErrInvalidTenant
		}
		rental.TenantID = tenantID.Int64()
	}
	if req.MoveIn != nil {
		moveIn, err := validateMonth(*req.MoveIn)
		if err != nil {
			return nil, err
		}
		rental.MoveIn = moveIn
	}
	if req.MoveOut != nil {
		moveOut, err := validateOptionalMonth(*req.MoveOut)
		if err != nil {
			return nil, err
		}
		rental.MoveOut = moveOut
	}
	if req.MonthlyPrice != nil {
		price, err := parsePrice(*req.MonthlyPrice)
		if err != nil {
			return nil, err
		}
		rental.MonthlyPrice = price
	}
	if req.Note != nil {
		rental.Note = trimPtr(req.Note)
	}

	rental.UpdatedAt = time.Now().UTC()
	roomChanged := rental.RoomID != previousRoomID

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if roomChanged {
			room, err := s.roomRepo.FindByID(ctx, tx, rental.RoomID)
			if err != nil {
				return err
			}
			if room == nil {
				return domain.ErrInvalidRoom
			}
			if rental.Status.Active() && room.Status != roomdomain.StatusAvailable {
				return domain.ErrRoomUnavailable
			}
		}

		if err := s.repo.Update(ctx, tx, rental); err != nil {
			return err
		}

		if roomChanged && rental.Status.Active() {
			if err := s.roomRepo.UpdateStatus(ctx, tx, previousRoomID, roomdomain.StatusAvailable); err != nil {
				return err
			}
			return s.roomRepo.UpdateStatus(ctx, tx, rental.RoomID, roomdomain.StatusOccupied)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Bump(ctx, reportcache.CollectionRentals, reportcache.CollectionRooms)
	return s.respond(ctx, rental.ID)
}

// UpdateStatus transitions the contract lifecycle. The room flips
// occupied/available only when the contract moves into or out of
// the active state.
func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateStatusRequest) (*domain.Response, error) {
	rentalID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	status := domain.RentalStatus(strings.TrimSpace(req.Status))
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	rental, err := s.repo.FindByID(ctx, s.db, rentalID.Int64())
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, domain.ErrNotFound
	}

	activenessChanged := rental.Status.Active() != status.Active()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UpdateStatus(ctx, tx, rental.ID, status); err != nil {
			return err
		}
		if !activenessChanged {
			return nil
		}
		roomStatus := roomdomain.StatusAvailable
		if status.Active() {
			roomStatus = roomdomain.StatusOccupied
		}
		return s.roomRepo.UpdateStatus(ctx, tx, rental.RoomID, roomStatus)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Bump(ctx, reportcache.CollectionRentals, reportcache.CollectionRooms)
	return s.respond(ctx, rental.ID)
}

// Delete removes the contract entirely. Lifecycle transitions via
// UpdateStatus are preferred; this exists for cleaning up mistakes.
func (s *Service) Delete(ctx context.Context, id string) error {
	rentalID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	rental, err := s.repo.FindByID(ctx, s.db, rentalID.Int64())
	if err != nil {
		return err
	}
	if rental == nil {
		return domain.ErrNotFound
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Delete(ctx, tx, rental.ID); err != nil {
			return err
		}
		if rental.Status.Active() {
			return s.roomRepo.UpdateStatus(ctx, tx, rental.RoomID, roomdomain.StatusAvailable)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Bump(ctx, reportcache.CollectionRentals, reportcache.CollectionRooms)
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

// validateOptionalMonth accepts an empty value; move-out is unknown
// until the tenant actually leaves.
func validateOptionalMonth(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return validateMonth(value)
}

func parsePrice(value string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, domain.ErrInvalidPrice
	}
	return price, nil
}

func toResponse(row *domain.RentalRow) domain.Response {
	return domain.Response{
		ID:           snowflake.ID(row.ID).String(),
		RoomID:       snowflake.ID(row.RoomID).String(),
		RoomName:     row.RoomName,
		PropertyName: row.PropertyName,
		TenantID:     snowflake.ID(row.TenantID).String(),
		TenantName:   row.TenantName,
		TenantPhone:  row.TenantPhone,
		MoveIn:       row.MoveIn,
		MoveOut:      row.MoveOut,
		MonthlyPrice: row.MonthlyPrice.String(),
		Status:       row.Status,
		Note:         row.Note,
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

package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kelolalabs/kelola/internal/arrears"
	paymentdomain "github.com/kelolalabs/kelola/internal/payment/domain"
	rentaldomain "github.com/kelolalabs/kelola/internal/rental/domain"
	"github.com/kelolalabs/kelola/internal/report/domain"
	"github.com/kelolalabs/kelola/internal/reportcache"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	RentalRepo  rentaldomain.Repository
	PaymentRepo paymentdomain.Repository
	Cache       *reportcache.Cache
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	rentalRepo  rentaldomain.Repository
	paymentRepo paymentdomain.Repository
	cache       *reportcache.Cache
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("report.service"),
		rentalRepo:  p.RentalRepo,
		paymentRepo: p.PaymentRepo,
		cache:       p.Cache,
	}
}

func (s *Service) PaymentStatus(ctx context.Context, asOf time.Time) (*domain.StatusReport, error) {
	// The billable range only moves at month granularity, so reports
	// within one month share a cache entry.
	cacheKey := s.cache.Key(ctx, "payment-status", arrears.MonthOf(asOf).String())
	var cached domain.StatusReport
	if s.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	active := rentaldomain.StatusActive
	rows, err := s.rentalRepo.ListRows(ctx, s.db, rentaldomain.ListFilter{Status: &active})
	if err != nil {
		return nil, err
	}
	paymentRows, err := s.paymentRepo.ListRows(ctx, s.db, nil)
	if err != nil {
		return nil, err
	}

	rentals := make([]arrears.Rental, 0, len(rows))
	rowByRental := make(map[string]*rentaldomain.RentalRow, len(rows))
	for i := range rows {
		rental := toArrearsRental(&rows[i])
		rentals = append(rentals, rental)
		rowByRental[rental.ID] = &rows[i]
	}

	payments := make([]arrears.Payment, 0, len(paymentRows))
	lastPaid := make(map[string]arrears.Month, len(rows))
	for i := range paymentRows {
		p := toArrearsPayment(&paymentRows[i])
		payments = append(payments, p)
		if m, err := arrears.ParseMonth(p.ForMonth); err == nil {
			if last, ok := lastPaid[p.RentalID]; !ok || m.After(last) {
				lastPaid[p.RentalID] = m
			}
		}
	}

	computed := arrears.ComputeReport(rentals, payments, asOf)

	report := &domain.StatusReport{
		AsOf:             asOf,
		Behind:           s.entries(computed.Behind, rowByRental, lastPaid),
		Current:          s.entries(computed.Current, rowByRental, lastPaid),
		Overpaid:         s.entries(computed.Overpaid, rowByRental, lastPaid),
		Errors:           computed.Errors,
		TotalOutstanding: computed.TotalOutstanding,
		TotalOverpaid:    computed.TotalOverpaid,
	}
	for _, re := range report.Errors {
		s.log.Warn("rental excluded from report",
			zap.String("rental_id", re.RentalID),
			zap.Error(re.Err),
		)
	}

	s.cache.Set(ctx, cacheKey, report)
	return report, nil
}

func (s *Service) RentalDetail(ctx context.Context, id string, asOf time.Time) (*domain.RentalDetail, error) {
	rentalID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	row, err := s.rentalRepo.FindRowByID(ctx, s.db, rentalID.Int64())
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}

	value := rentalID.Int64()
	paymentRows, err := s.paymentRepo.ListRows(ctx, s.db, &value)
	if err != nil {
		return nil, err
	}

	rental := toArrearsRental(row)
	payments := make([]arrears.Payment, 0, len(paymentRows))
	lines := make([]domain.PaymentLine, 0, len(paymentRows))
	lastPaid := map[string]arrears.Month{}
	for i := range paymentRows {
		p := toArrearsPayment(&paymentRows[i])
		payments = append(payments, p)
		lines = append(lines, domain.PaymentLine{
			ID:        p.ID,
			Amount:    p.Amount,
			ForMonth:  p.ForMonth,
			Note:      paymentRows[i].Note,
			CreatedAt: paymentRows[i].CreatedAt,
		})
		if m, err := arrears.ParseMonth(p.ForMonth); err == nil {
			if last, ok := lastPaid[p.RentalID]; !ok || m.After(last) {
				lastPaid[p.RentalID] = m
			}
		}
	}

	status, err := arrears.ComputePaymentStatus(rental, payments, asOf)
	if err != nil {
		return nil, err
	}

	entry := s.entry(status, row, lastPaid)

	// Payment history reads oldest month first on the detail page.
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}

	return &domain.RentalDetail{Entry: entry, Payments: lines}, nil
}

func (s *Service) entries(statuses []arrears.PaymentStatus, rows map[string]*rentaldomain.RentalRow, lastPaid map[string]arrears.Month) []domain.StatusEntry {
	entries := make([]domain.StatusEntry, 0, len(statuses))
	for _, status := range statuses {
		entries = append(entries, s.entry(status, rows[status.Rental.ID], lastPaid))
	}
	return entries
}

func (s *Service) entry(status arrears.PaymentStatus, row *rentaldomain.RentalRow, lastPaid map[string]arrears.Month) domain.StatusEntry {
	entry := domain.StatusEntry{PaymentStatus: status}
	if row != nil {
		entry.RoomName = row.RoomName
		entry.PropertyName = row.PropertyName
		entry.TenantName = row.TenantName
		entry.TenantPhone = row.TenantPhone
	}
	if m, ok := lastPaid[status.Rental.ID]; ok {
		entry.LastPaidMonth = &m
	}
	return entry
}

func toArrearsRental(row *rentaldomain.RentalRow) arrears.Rental {
	return arrears.Rental{
		ID:           snowflake.ID(row.ID).String(),
		MoveIn:       row.MoveIn,
		MoveOut:      row.MoveOut,
		MonthlyPrice: row.MonthlyPrice.String(),
		Status:       arrears.RentalStatus(row.Status),
	}
}

func toArrearsPayment(row *paymentdomain.PaymentRow) arrears.Payment {
	return arrears.Payment{
		ID:       snowflake.ID(row.ID).String(),
		RentalID: snowflake.ID(row.RentalID).String(),
		Amount:   row.Amount.String(),
		ForMonth: row.ForMonth,
	}
}

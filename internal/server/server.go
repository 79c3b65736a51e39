package server

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kelolalabs/kelola/internal/clock"
	"github.com/kelolalabs/kelola/internal/config"
	paymentdomain "github.com/kelolalabs/kelola/internal/payment/domain"
	propertydomain "github.com/kelolalabs/kelola/internal/property/domain"
	rentaldomain "github.com/kelolalabs/kelola/internal/rental/domain"
	reportdomain "github.com/kelolalabs/kelola/internal/report/domain"
	roomdomain "github.com/kelolalabs/kelola/internal/room/domain"
	tenantdomain "github.com/kelolalabs/kelola/internal/tenant/domain"
)

// Server holds the HTTP handler dependencies. One handler file per
// resource; all of them hang off this struct.
type Server struct {
	cfg   config.Config
	log   *zap.Logger
	clock clock.Clock

	propertySvc propertydomain.Service
	roomSvc     roomdomain.Service
	tenantSvc   tenantdomain.Service
	rentalSvc   rentaldomain.Service
	paymentSvc  paymentdomain.Service
	reportSvc   reportdomain.Service
}

type Params struct {
	fx.In

	Cfg   config.Config
	Log   *zap.Logger
	Clock clock.Clock

	PropertySvc propertydomain.Service
	RoomSvc     roomdomain.Service
	TenantSvc   tenantdomain.Service
	RentalSvc   rentaldomain.Service
	PaymentSvc  paymentdomain.Service
	ReportSvc   reportdomain.Service
}

func New(p Params) *Server {
	return &Server{
		cfg:         p.Cfg,
		log:         p.Log.Named("server"),
		clock:       p.Clock,
		propertySvc: p.PropertySvc,
		roomSvc:     p.RoomSvc,
		tenantSvc:   p.TenantSvc,
		rentalSvc:   p.RentalSvc,
		paymentSvc:  p.PaymentSvc,
		reportSvc:   p.ReportSvc,
	}
}

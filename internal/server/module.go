package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kelolalabs/kelola/internal/payment"
	"github.com/kelolalabs/kelola/internal/property"
	"github.com/kelolalabs/kelola/internal/rental"
	"github.com/kelolalabs/kelola/internal/report"
	"github.com/kelolalabs/kelola/internal/room"
	"github.com/kelolalabs/kelola/internal/tenant"
)

var httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kelola_http_requests_total",
	Help: "HTTP requests by method, route and status.",
}, []string{"method", "route", "status"})

var httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "kelola_http_request_duration_seconds",
	Help:    "HTTP request latency by route.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})

func (s *Server) requestObserver() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())

		if c.Writer.Status() >= http.StatusInternalServerError {
			s.log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("route", route),
				zap.Int("status", c.Writer.Status()))
		}
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestObserver())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	v1.POST("/properties", s.CreateProperty)
	v1.GET("/properties", s.ListProperties)
	v1.GET("/properties/:id", s.GetPropertyByID)
	v1.PATCH("/properties/:id", s.UpdateProperty)
	v1.DELETE("/properties/:id", s.DeleteProperty)

	v1.POST("/rooms", s.CreateRoom)
	v1.GET("/rooms", s.ListRooms)
	v1.GET("/rooms/:id", s.GetRoomByID)
	v1.PATCH("/rooms/:id", s.UpdateRoom)
	v1.DELETE("/rooms/:id", s.DeleteRoom)

	v1.POST("/tenants", s.CreateTenant)
	v1.GET("/tenants", s.ListTenants)
	v1.GET("/tenants/:id", s.GetTenantByID)
	v1.PATCH("/tenants/:id", s.UpdateTenant)
	v1.DELETE("/tenants/:id", s.DeleteTenant)

	v1.POST("/rentals", s.CreateRental)
	v1.GET("/rentals", s.ListRentals)
	v1.GET("/rentals/:id", s.GetRentalByID)
	v1.PATCH("/rentals/:id", s.UpdateRental)
	v1.POST("/rentals/:id/status", s.UpdateRentalStatus)
	v1.DELETE("/rentals/:id", s.DeleteRental)

	v1.POST("/payments", s.CreatePayment)
	v1.GET("/payments", s.ListPayments)
	v1.GET("/payments/:id", s.GetPaymentByID)
	v1.PATCH("/payments/:id", s.UpdatePayment)
	v1.DELETE("/payments/:id", s.DeletePayment)

	v1.GET("/reports/payment-status", s.GetPaymentStatusReport)
	v1.GET("/reports/payment-status/export", s.ExportPaymentStatusReport)
	v1.GET("/reports/rentals/:id", s.GetRentalPaymentDetail)

	return r
}

func RunHTTP(lc fx.Lifecycle, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:    s.cfg.HTTP.Addr,
		Handler: s.Router(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	property.Module,
	room.Module,
	tenant.Module,
	rental.Module,
	payment.Module,
	report.Module,

	fx.Provide(New),
	fx.Invoke(RunHTTP),
)

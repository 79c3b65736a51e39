package payment

import (
	"go.uber.org/fx"

	"github.com/kelolalabs/kelola/internal/payment/repository"
	"github.com/kelolalabs/kelola/internal/payment/service"
)

var Module = fx.Module("payment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

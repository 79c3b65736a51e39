package rental

import (
	"go.uber.org/fx"

	"github.com/kelolalabs/kelola/internal/rental/repository"
	"github.com/kelolalabs/kelola/internal/rental/service"
)

var Module = fx.Module("rental.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

package tenant

import (
	"go.uber.org/fx"

	"github.com/kelolalabs/kelola/internal/tenant/repository"
	"github.com/kelolalabs/kelola/internal/tenant/service"
)

var Module = fx.Module("tenant.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

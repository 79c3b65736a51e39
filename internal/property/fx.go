package property

import (
	"go.uber.org/fx"

	"github.com/kelolalabs/kelola/internal/property/repository"
	"github.com/kelolalabs/kelola/internal/property/service"
)

var Module = fx.Module("property.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

package room

import (
	"go.uber.org/fx"

	"github.com/kelolalabs/kelola/internal/room/repository"
	"github.com/kelolalabs/kelola/internal/room/service"
)

var Module = fx.Module("room.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

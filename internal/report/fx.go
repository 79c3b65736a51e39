package report

import (
	"go.uber.org/fx"

	"github.com/kelolalabs/kelola/internal/report/service"
)

// The report service reads through the rental and payment
// repositories, so this module has no repository of its own.
var Module = fx.Module("report.service",
	fx.Provide(service.New),
)

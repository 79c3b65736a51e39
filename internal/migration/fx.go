package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/kelolalabs/kelola/internal/config"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(cfg config.Config, conn *gorm.DB) error {
		if cfg.Database.Driver == config.DriverSQLite {
			return AutoMigrate(conn)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)

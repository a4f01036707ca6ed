package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"pokereview/internal/config"
	"pokereview/internal/infra"
)

var Module = fx.Provide(
	config.Load, provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}

package database

import (
	"fmt"

	"github.com/sandeepkv93/lost-and-found-backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the record store. TranslateError makes uniqueness
// violations surface as gorm.ErrDuplicatedKey for both dialects.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
	switch cfg.DatabaseDriver {
	case "", "postgres":
		return gorm.Open(postgres.Open(cfg.DatabaseURL), gcfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DatabaseURL), gcfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}

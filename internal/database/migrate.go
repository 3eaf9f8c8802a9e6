package database

import (
	"context"
	"time"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/observability"

	"gorm.io/gorm"
)

// Models lists every table managed by Migrate, in dependency order.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Owner{},
		&domain.LostItem{},
	}
}

func Migrate(db *gorm.DB) error {
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(context.Background(), "migrate", time.Since(start))
	}()
	if err := db.AutoMigrate(Models()...); err != nil {
		observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "error")
		return err
	}
	observability.RecordDatabaseStartupEvent(context.Background(), "migrate", "success")
	return nil
}

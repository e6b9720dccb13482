package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"ingles-autodidata/internal/config"
	"ingles-autodidata/internal/domain/user"
)

// UserStore is a profile repository that may hold an open resource
type UserStore interface {
	user.Repository
	Close() error
}

// NewUserStore opens the profile store selected by cfg.Storage.Driver
func NewUserStore(cfg *config.Config, logger *zap.Logger) (UserStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverJSON:
		return NewJSONUserRepository(cfg.Files.Users, logger), nil
	case config.DriverSQLite:
		db, err := NewSQLiteDB(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return NewSQLiteUserRepository(db, logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", config.ErrInvalidConfig, cfg.Storage.Driver)
	}
}

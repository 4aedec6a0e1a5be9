package database

import (
	"fmt"

	"clinic-management/config"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewConnection opens the configured database and brings its schema up to date
// when DB_MIGRATE is set.
func NewConnection(cfg config.DBConfig, log *logrus.Logger) (*gorm.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.Migrate {
			if err := RunMigrations(cfg, log); err != nil {
				return nil, err
			}
		}
		return NewPostgresConnection(cfg, log)

	case config.DriverSQLite:
		db, err := NewSQLiteConnection(cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		if cfg.Migrate {
			if err := AutoMigrate(db); err != nil {
				return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
			}
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

package database

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const sqliteMemory = ":memory:"

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per connection.
func sqliteDSN(path string) string {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return path + separator + "_pragma=foreign_keys(1)"
}

// NewSQLiteConnection opens a file or in-memory SQLite database.
// An in-memory database lives on a single connection so every query sees the same data.
func NewSQLiteConnection(path string, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if path == sqliteMemory {
		sqlDB.SetMaxOpenConns(1)
	}

	log.Infof("Successfully opened SQLite database at %s", path)

	return db, nil
}

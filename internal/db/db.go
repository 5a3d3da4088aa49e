package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/uniquers/landing/internal/models"
)

// Open opens (or creates) the SQLite database at path and runs schema
// setup. The handle is returned to the caller rather than stashed in a
// package global so tests and main can wire their own.
func Open(path string) (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(&models.Subscriber{}); err != nil {
		return nil, err
	}

	// Composite index for the admin list filters; GORM doesn't create it
	// from struct tags.
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_subscribers_created_updated ON subscribers(created_at, keep_updated)")

	log.Println("database ready (sqlite)")
	return conn, nil
}

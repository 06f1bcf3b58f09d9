// Package testutil provides an in-memory store for package tests.
package testutil

import (
	"testing"

	"inmate-management-backend/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns a migrated in-memory SQLite database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"), logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every pooled connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

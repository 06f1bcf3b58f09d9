package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inmate-management-backend/internal/config"
	"inmate-management-backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured store and returns a GORM connection.
// DB_DRIVER selects MySQL (default) or an embedded SQLite file.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsRelease() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := Open(dialector, gormLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	if cfg.Database.Driver == "sqlite" {
		// a single writer avoids SQLITE_BUSY on concurrent transactions
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Open wraps gorm.Open with the settings every connection in this service
// shares: UTC timestamps and translated driver errors.
func Open(dialector gorm.Dialector, gormLogger logger.Interface) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
	})
}

// Migrate creates or updates the cells, inmates and visitors tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Cell{}, &models.Inmate{}, &models.Visitor{})
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql", "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Database,
		)
		return mysql.Open(dsn), nil
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return sqlite.Open(cfg.Path + "?_foreign_keys=off&_busy_timeout=5000"), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

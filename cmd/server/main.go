package main

import (
	"fmt"
	"os"

	"inmate-management-backend/internal/config"
	"inmate-management-backend/internal/database"
	"inmate-management-backend/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "inmate-server",
	Short: "Inmate management backend",
	Long: `REST backend for cell, inmate and visitor records.

Running without a subcommand is the same as "serve".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.LoadConfig()

		var err error
		log, err = logger.New(cfg.Log.Level, cfg.IsRelease())
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		log.Debug("configuration loaded", zap.String("db_driver", cfg.Database.Driver))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// connect opens the store and brings the schema up to date
func connect() (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("database ready", zap.String("driver", cfg.Database.Driver))
	return db, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"inmate-management-backend/internal/events"
	"inmate-management-backend/internal/repository"
	"inmate-management-backend/internal/seed"
	"inmate-management-backend/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the cells, inmates and visitors tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := connect()
		return err
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo inmate roster, skipping IDs that already exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := connect()
		if err != nil {
			return err
		}

		inmates := service.NewInmateService(repository.NewStore(db), events.NopPublisher{}, log)
		res, err := seed.Run(cmd.Context(), inmates, log)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		log.Info("seeding complete", zap.Int("added", res.Added), zap.Int("skipped", res.Skipped))
		return nil
	},
}

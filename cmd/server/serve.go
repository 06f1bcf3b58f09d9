package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inmate-management-backend/internal/config"
	"inmate-management-backend/internal/events"
	"inmate-management-backend/internal/repository"
	"inmate-management-backend/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := connect()
	if err != nil {
		return err
	}

	publisher := newPublisher()
	if closer, ok := publisher.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
		log.Info("dashboard cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.CacheTTL))
	} else if cfg.Redis.Enabled {
		log.Warn("redis unreachable, dashboard cache disabled", zap.String("addr", cfg.Redis.Addr))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gin.SetMode(cfg.Server.GinMode)
	r := router.New(router.Deps{
		Config:    cfg,
		Store:     repository.NewStore(db),
		Publisher: publisher,
		Redis:     rdb,
		Registry:  registry,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-quit:
	}
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}

// newPublisher connects to the broker when events are enabled. The server
// still starts when the broker is down; events are then dropped.
func newPublisher() events.Publisher {
	if !cfg.Queue.Enabled {
		return events.NopPublisher{}
	}
	pub, err := events.NewAMQPPublisher(cfg.Queue.URL, cfg.Queue.Exchange)
	if err != nil {
		log.Warn("event broker unreachable, events disabled", zap.Error(err))
		return events.NopPublisher{}
	}
	log.Info("publishing events", zap.String("exchange", cfg.Queue.Exchange))
	return pub
}

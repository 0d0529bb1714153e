package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timeweave/core/cache"
	"timeweave/core/config"
	"timeweave/core/database"
	"timeweave/core/logger"
	"timeweave/core/middleware"
	"timeweave/core/queue"
	"timeweave/core/storage"
	"timeweave/modules/admin"
	"timeweave/modules/calendar"
	"timeweave/modules/meeting"
	"timeweave/modules/notification"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run wires configuration, infrastructure and modules together, then serves
// HTTP plus the background worker until an interrupt arrives. The worker and
// the cron scheduler share the API process.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env)
	defer logger.Sync()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelMigrate()
	if err := database.Migrate(migrateCtx, db); err != nil {
		return err
	}

	c, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer c.Close()

	q := queue.NewQueue(cfg.Redis)
	defer q.Close()

	var st *storage.S3Storage
	if cfg.Storage.Enabled {
		st = storage.NewS3Storage(cfg.Storage)
		logger.Info("Archive storage enabled", "bucket", cfg.Storage.Bucket)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())

	e.GET("/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	mw := middleware.NewMiddleware()

	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	notifSvc := notification.Init(privateRoutes, db, mw)
	meetingSvc := meeting.Init(e, db, mw, c, q, st, notifSvc, cfg.Server.BaseURL)
	calendar.Init(e, db, c, meetingSvc)
	admin.Init(e, db, mw)

	worker := queue.NewServer(cfg.Redis)
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskTypeInvitationEmail, meetingSvc.HandleInvitationEmail)
	mux.HandleFunc(queue.TaskTypeLockedEmail, meetingSvc.HandleLockedEmail)
	mux.HandleFunc(queue.TaskTypeAvailabilityRefresh, meetingSvc.HandleAvailabilityRefresh)

	if err := worker.Start(mux); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}
	defer worker.Shutdown()

	scheduler, err := queue.NewScheduler(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}
	defer scheduler.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()
	logger.Info("Server listening", "addr", addr, "env", cfg.Server.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		logger.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("Server stopped")
		return nil
	}
}

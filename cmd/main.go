// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/campuslabs/event-registry/internal/config"
	"github.com/campuslabs/event-registry/internal/database"
	"github.com/campuslabs/event-registry/internal/handler"
	"github.com/campuslabs/event-registry/internal/logger"
	"github.com/campuslabs/event-registry/internal/repository"
	"github.com/campuslabs/event-registry/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// ── 1. Connect to PostgreSQL, migrate, seed ───────────────────────────
	pool, err := database.NewPool(ctx, cfg.DB, zlog)
	if err != nil {
		zlog.Fatal("database", zap.Error(err))
	}
	defer pool.Close()
	zlog.Info("connected to postgres", zap.String("db", cfg.DB.Name))

	if err := database.Migrate(cfg.DB, zlog); err != nil {
		zlog.Fatal("migrate", zap.Error(err))
	}
	if err := database.Seed(ctx, pool, zlog); err != nil {
		zlog.Fatal("seed", zap.Error(err))
	}

	// ── 2. Wire up layers ────────────────────────────────────────────────
	svc := service.NewRegistry(
		repository.NewCollegeRepository(pool),
		repository.NewStudentRepository(pool),
		repository.NewEventRepository(pool),
		repository.NewRegistrationRepository(pool),
		repository.NewAttendanceRepository(pool),
		repository.NewFeedbackRepository(pool),
		repository.NewReportRepository(pool),
	)
	h := handler.New(svc, cfg.JWTSecret)

	// ── 3. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      h.Routes(zlog),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		zlog.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server", zap.Error(err))
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("graceful shutdown failed", zap.Error(err))
	}
	zlog.Info("server stopped")
}

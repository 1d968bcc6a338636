package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"inventario/internal/config"
	"inventario/internal/database"
	"inventario/internal/repositories"
	"inventario/pkg/logger"
)

func main() {
	// A missing .env is fine, variables may come from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLog := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	db, err := database.Open(cfg.DB, appLog)
	if err != nil {
		appLog.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to open database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			appLog.Error().Err(err).Msg("failed to close database")
		}
	}()

	if cfg.DB.Seed {
		if err := database.Seed(context.Background(), repositories.NewGORMStore(db), appLog); err != nil {
			appLog.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	app := NewApp(cfg, db, appLog)

	go func() {
		appLog.Info().Str("addr", cfg.HTTP.Addr()).Str("env", cfg.App.Env).Msg("starting server")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			appLog.Error().Err(err).Msg("server stopped")
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLog.Error().Err(err).Msg("error during server shutdown")
	}

	appLog.Info().Msg("server gracefully stopped")
}

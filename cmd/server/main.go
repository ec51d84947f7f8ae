package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/matchday/internal/api"
	"github.com/mcoot/matchday/internal/config"
	"github.com/mcoot/matchday/internal/factory"
	"github.com/mcoot/matchday/internal/services/auth"
	redissessions "github.com/mcoot/matchday/internal/sessions/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate has already rejected unknown levels
	level, _ := cfg.SlogLevel()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.Storage,
		SQLitePath:  cfg.SQLitePath,
		SessionType: cfg.Sessions,
		AuthConfig: auth.Config{
			SessionDuration: cfg.SessionTTL,
			Admins:          cfg.Admins,
		},
	}
	if cfg.Sessions == config.SessionsRedis {
		redisCfg := redissessions.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close backends", slog.String("error", err.Error()))
		}
	}()

	logger.Info("backends ready",
		slog.String("storage", cfg.Storage),
		slog.String("sessions", cfg.Sessions),
		slog.Int("admins", len(cfg.Admins)),
	)

	router := api.NewRouter(api.RouterConfig{
		Logger:               logger,
		AuthService:          app.AuthService,
		GameController:       app.GameController,
		AttendanceController: app.AttendanceController,
		GuestController:      app.GuestController,
		RosterService:        app.RosterService,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return
		}
	}

	logger.Info("server stopped")
}

package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neopixel_controller/internal/config"
	"neopixel_controller/internal/handlers"
	"neopixel_controller/internal/logger"
	"neopixel_controller/internal/repository"
	"neopixel_controller/internal/repository/db"
	"neopixel_controller/internal/server"
	"neopixel_controller/internal/service"
	"neopixel_controller/internal/transport"
)

const (
	configDir       = "configs"
	shutdownTimeout = 10 * time.Second
)

// @title                       NeoPixel Controller API
// @version                     1.0
// @description                 Compose 5-byte command records and broadcast them to the receiver boards.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer func() { _ = log.Sync() }()

	sqlDB, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	link, err := transport.New(cfg.Gateway, log)
	if err != nil {
		log.Fatalw("failed to open gateway link", "err", err, "driver", cfg.Gateway.Driver)
	}
	defer func() {
		if cerr := link.Close(); cerr != nil {
			log.Errorw("failed to close gateway link", "err", cerr)
		}
	}()

	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, link, log, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
	})
	apiHandler := handlers.NewHandler(services, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedPeers(ctx, cfg.Peers.File, services, log)

	go services.Repeater.Run(ctx, cfg.Radio.ResendInterval)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("neopixel controller started",
		"port", cfg.Port, "driver", cfg.Gateway.Driver, "channel", cfg.Radio.Channel)

	waitForShutdown(cancel, srv, log)
}

func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening sqlite", "path", cfg.DB.Path)
	return db.InitDB(cfg.DB.Path)
}

// seedPeers registers the peers file entries. A missing or broken file is
// logged and the service starts with whatever table it already has.
func seedPeers(ctx context.Context, path string, services *service.Service, log *logger.Logger) {
	if path == "" {
		return
	}
	entries, err := config.LoadPeerFile(path)
	if err != nil {
		log.Warnw("peers file not loaded", "path", path, "err", err)
		return
	}
	added, err := services.Peers.Seed(ctx, entries)
	if err != nil {
		log.Warnw("peers seed incomplete", "path", path, "added", added, "err", err)
		return
	}
	log.Infow("peers seeded", "path", path, "added", added, "entries", len(entries))
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop the repeater
	cancel()

	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}

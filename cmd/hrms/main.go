package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/hrms/internal/config"
	"github.com/deppfellow/hrms/internal/database"
	"github.com/deppfellow/hrms/internal/handler"
	"github.com/deppfellow/hrms/internal/logger"
	"github.com/deppfellow/hrms/internal/repository"
	"github.com/deppfellow/hrms/internal/router"
	"github.com/deppfellow/hrms/internal/server"
	"github.com/deppfellow/hrms/internal/service"
	"github.com/rs/zerolog"
)

const (
	indexTimeout    = 30 * time.Second
	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		panic("failed to initialize New Relic: " + err.Error())
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	// From here on srv.Shutdown owns the New Relic application.
	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	if err := run(srv, &log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		shutdown(srv, &log)
		os.Exit(1)
	}

	shutdown(srv, &log)
}

// run wires the application and serves until SIGINT/SIGTERM or a listener
// failure.
func run(srv *server.Server, log *zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	err := database.EnsureIndexes(ctx, log, srv.DB.DB)
	cancel()
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		return nil
	}
}

func shutdown(srv *server.Server, log *zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited properly")
}

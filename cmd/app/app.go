package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zunde-outreach/checkin-api/internal/api"
	"github.com/zunde-outreach/checkin-api/internal/broker"
	"github.com/zunde-outreach/checkin-api/internal/config"
	"github.com/zunde-outreach/checkin-api/internal/db"
	"github.com/zunde-outreach/checkin-api/internal/logger"
)

const defaultConfigPath = "./cmd/app/config.yml"

func Start() error {
	flags := pflag.NewFlagSet("checkin-api", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", defaultConfigPath, "path to the YAML config file")
	migrateOnly := flags.Bool("migrate-only", false, "apply database migrations and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("failed to parse flags -> %w", err)
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	defer func() {
		if err := db.Close(postgresDB); err != nil {
			zap.L().Warn("failed to close database", zap.Error(err))
		}
	}()

	if err = db.RunMigrations(postgresDB); err != nil {
		return fmt.Errorf("failed to run migrations -> %w", err)
	}
	if *migrateOnly {
		return nil
	}

	publisher, err := newPublisher(conf.RabbitMQ)
	if err != nil {
		return fmt.Errorf("failed to initialize broker -> %w", err)
	}
	defer publisher.Close()

	s, err := api.NewServer(conf, postgresDB, publisher)
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}

	return serve(s)
}

func newPublisher(conf *config.RabbitMQConfig) (broker.Publisher, error) {
	if !conf.Enabled() {
		zap.L().Info("rabbitmq url not set, attendance events will not be published")
		return broker.NoopPublisher{}, nil
	}

	client, err := broker.NewRabbit(conf.URL, conf.Exchange)
	if err != nil {
		return nil, fmt.Errorf("broker.NewRabbit -> %w", err)
	}

	return client, nil
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests for up to the configured shutdown timeout.
func serve(s *api.Server) error {
	srv := &http.Server{
		Addr:    ":" + s.Config.API.Port,
		Handler: s.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case sig := <-quit:
		zap.L().Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.API.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

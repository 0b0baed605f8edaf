// Package database contains the logic for establishing
// connections to MongoDB.
//
// It handles:
//   - building client options from config
//   - wiring command logging (slow commands, local tracing)
//   - optional New Relic instrumentation (nrmongo)
//   - creating the unique indexes the service relies on
package database

import (
	"context"
	"time"

	"github.com/deppfellow/hrms/internal/config"
	loggerConfig "github.com/deppfellow/hrms/internal/logger"
	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database wraps the MongoDB client and the application database handle.
//
// Client is safe for concurrent use and shared by every request.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// New connects to MongoDB with instrumentation and pings the primary.
//
// Behavior:
//   - Slow commands (above the configured threshold) are always logged.
//   - In local env every command is traced to a console logger.
//   - When New Relic is enabled the monitor is wrapped by nrmongo so each
//     command shows up as a datastore segment.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	timeout := time.Duration(cfg.Database.ConnectTimeout) * time.Second

	clientOptions := options.Client().
		ApplyURI(cfg.Database.URI).
		SetAppName(config.ServiceName).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	threshold := cfg.Observability.Logging.SlowQueryThreshold
	var monitor *event.CommandMonitor
	if cfg.Primary.Env == "local" {
		commandLogger := loggerConfig.NewCommandLogger(logger.GetLevel())
		monitor = NewCommandMonitor(&commandLogger, threshold, true)
	} else {
		monitor = NewCommandMonitor(logger, threshold, false)
	}

	if loggerService.GetApplication() != nil {
		monitor = nrmongo.NewCommandMonitor(monitor)
	}
	clientOptions.SetMonitor(monitor)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mongo client")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping database")
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("connected to the database")

	return &Database{
		Client: client,
		DB:     client.Database(cfg.Database.Name),
		log:    logger,
	}, nil
}

// Ping checks connectivity to the primary.
func (db *Database) Ping(ctx context.Context) error {
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client, waiting for in-use connections until ctx expires.
func (db *Database) Close(ctx context.Context) error {
	db.log.Info().Msg("closing database connection")
	return db.Client.Disconnect(ctx)
}

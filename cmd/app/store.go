package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// openStore connects the backend selected by DB_DRIVER, retrying while the database
// comes up, and prepares its schema. The returned func releases the connection.
func openStore(cfg *Config, logger *slog.Logger) (blogservice.Store, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch cfg.DB.Driver {
	case DriverMongo:
		var client *mongo.Client
		err := common.Retry(ctx, logger, "connect mongodb", 6, 500*time.Millisecond, func() error {
			var err error
			client, err = common.NewMongoClient(cfg.Mongo.URI, 100)
			return err
		})
		if err != nil {
			return nil, nil, err
		}

		m := blogservice.NewMongoModel(client.Database(cfg.Mongo.Database))
		if err := m.EnsureSchema(ctx); err != nil {
			common.CloseMongoClient(client)
			return nil, nil, err
		}

		logger.Info("connected to mongodb", slog.String("database", cfg.Mongo.Database))

		return m, func() error { return common.CloseMongoClient(client) }, nil

	case DriverPostgres:
		URI := common.PostgresURI(cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Name)

		var db *sql.DB
		err := common.Retry(ctx, logger, "connect postgres", 6, 500*time.Millisecond, func() error {
			var err error
			db, err = common.NewDB(URI, 25, 25, 15*time.Minute)
			return err
		})
		if err != nil {
			return nil, nil, err
		}

		m, err := common.Migrate(cfg.DB.MigrationsPath, URI)
		if err != nil {
			common.CloseDB(db)
			return nil, nil, err
		}
		m.Close()

		logger.Info("connected to postgres", slog.String("database", cfg.Postgres.Name))

		return blogservice.NewPostgresModel(db), func() error { return common.CloseDB(db) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DB.Driver)
	}
}

// releaseStore runs the close func returned by openStore and logs its failure.
func releaseStore(logger *slog.Logger, closeStore func() error) {
	if err := closeStore(); err != nil {
		logger.Error("failed to close the blog store", slog.String("error", err.Error()))
	}
}

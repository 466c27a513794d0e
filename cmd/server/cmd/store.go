package cmd

import (
	"context"
	"log/slog"

	"eventrsvp/config"
	"eventrsvp/internal/domain"
	"eventrsvp/internal/metrics"
	"eventrsvp/internal/repository"
	"eventrsvp/internal/repository/mongodb"
	"eventrsvp/internal/repository/postgres"
)

// store is the repository the services use plus the hook that releases its connection.
type store struct {
	repo  domain.RSVPRepository
	close func(context.Context) error
}

// openStore connects the configured driver. A failed connection does not stop startup:
// the returned store fails every call with domain.ErrStoreUnavailable.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) *store {
	var (
		st  *store
		err error
	)
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		st, err = openPostgres(ctx, cfg)
	default:
		st, err = openMongo(ctx, cfg)
	}
	if err != nil {
		logger.Warn("store unavailable, serving in degraded mode", "store_driver", cfg.StoreDriver, "err", err)
		metrics.StoreAvailable.Set(0)
		return &store{
			repo:  repository.NewUnavailableRepository(err),
			close: func(context.Context) error { return nil },
		}
	}
	logger.Info("store connected", "store_driver", cfg.StoreDriver)
	metrics.StoreAvailable.Set(1)
	return st
}

func openMongo(ctx context.Context, cfg *config.Config) (*store, error) {
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.StoreTimeout)
	if err != nil {
		return nil, err
	}
	coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)

	idxCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	if err := mongodb.EnsureIndexes(idxCtx, coll); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &store{
		repo:  mongodb.NewRSVPRepository(coll),
		close: client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*store, error) {
	db, err := postgres.Open(ctx, cfg.DBUrl, cfg.StoreTimeout)
	if err != nil {
		return nil, err
	}

	schemaCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	if err := postgres.EnsureSchema(schemaCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &store{
		repo:  postgres.NewRSVPRepository(db),
		close: func(context.Context) error { return db.Close() },
	}, nil
}

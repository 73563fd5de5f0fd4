package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handle is an open connection to one of the supported backends. Exactly one
// of SQL and Mongo is set.
type Handle struct {
	Driver string
	SQL    *gorm.DB
	Mongo  *mongo.Database
}

// IsMongo reports whether the handle uses the document backend.
func (h *Handle) IsMongo() bool {
	return h.Mongo != nil
}

// Ping checks that the backend is reachable.
func (h *Handle) Ping(ctx context.Context) error {
	if h.IsMongo() {
		return h.Mongo.Client().Ping(ctx, nil)
	}
	sqlDB, err := h.SQL.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connections.
func (h *Handle) Close(ctx context.Context) error {
	if h.IsMongo() {
		return h.Mongo.Client().Disconnect(ctx)
	}
	sqlDB, err := h.SQL.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Open connects to the configured backend, retrying with exponential backoff
// up to cfg.ConnectRetries extra attempts.
func Open(ctx context.Context, cfg Config, log *zap.Logger) (*Handle, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var handle *Handle
	attempt := 0
	operation := func() error {
		attempt++
		h, err := open(ctx, cfg)
		if err != nil {
			if errors.Is(err, ErrUnsupportedDriver) {
				return backoff.Permanent(err)
			}
			log.Warn("Database connection attempt failed",
				zap.String("driver", cfg.Driver),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}
		handle = h
		return nil
	}

	retries := cfg.ConnectRetries
	if retries < 0 {
		retries = 0
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries)),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("failed to open %s database after %d attempt(s): %w", cfg.Driver, attempt, err)
	}

	log.Info("Connected to database", zap.String("driver", handle.Driver), zap.Int("attempts", attempt))
	return handle, nil
}

func open(ctx context.Context, cfg Config) (*Handle, error) {
	if cfg.Driver == DriverMongoDB {
		client, err := ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		name := cfg.Name
		if name == "" {
			name = "social_network"
		}
		return &Handle{Driver: DriverMongoDB, Mongo: client.Database(name)}, nil
	}

	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	return &Handle{Driver: db.Dialector.Name(), SQL: db}, nil
}

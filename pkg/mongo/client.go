package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect creates a client without waiting for the server. The driver
// connects lazily, so only an invalid configuration fails here.
func Connect(cfg Config) (*mongo.Client, error) {
	uri, err := cfg.URI()
	if err != nil {
		return nil, err
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}
	if cfg.StrictAPI {
		opts.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
			SetStrict(true).
			SetDeprecationErrors(true))
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return client, nil
}

// New connects and pings the server, retrying the ping cfg.RetryAttempts
// times with cfg.RetryInterval between attempts.
func New(ctx context.Context, cfg Config) (*mongo.Client, error) {
	client, err := Connect(cfg)
	if err != nil {
		return nil, err
	}

	if err := WaitReady(ctx, client, cfg.RetryAttempts, cfg.RetryInterval); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// NewWithDatabase is New followed by selecting cfg.Database.
func NewWithDatabase(ctx context.Context, cfg Config) (*mongo.Database, error) {
	client, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(cfg.Database), nil
}

// WaitReady pings the server until it answers, attempts run out or ctx is done.
// The last ping error is joined with ErrFailedToConnectToMongo.
func WaitReady(ctx context.Context, client *mongo.Client, attempts int, interval time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := range attempts {
		if lastErr = client.Ping(ctx, nil); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(interval):
		}
	}

	return errors.Join(ErrFailedToConnectToMongo, lastErr)
}

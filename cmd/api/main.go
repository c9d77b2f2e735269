package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/foodstation/internal/api"
	"github.com/dmitrymomot/foodstation/internal/config"
	"github.com/dmitrymomot/foodstation/internal/metrics"
	"github.com/dmitrymomot/foodstation/internal/resource"
	"github.com/dmitrymomot/foodstation/internal/session"
	"github.com/dmitrymomot/foodstation/internal/store"
	"github.com/dmitrymomot/foodstation/pkg/httpserver"
	"github.com/dmitrymomot/foodstation/pkg/logger"
	"github.com/dmitrymomot/foodstation/pkg/mongo"
	"github.com/dmitrymomot/foodstation/pkg/ratelimiter"
	"github.com/dmitrymomot/foodstation/pkg/redis"
	"github.com/dmitrymomot/foodstation/pkg/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.App.Env, cfg.App.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := mongo.Connect(cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn("mongo disconnect failed", logger.Error(err))
		}
	}()

	// The server starts even when the database is unreachable; resource
	// calls fail with 500 and /readyz reports NOT_READY until it answers.
	go func() {
		if err := mongo.WaitReady(ctx, client, cfg.Mongo.RetryAttempts, cfg.Mongo.RetryInterval); err != nil {
			log.Error("mongo is not reachable", logger.Component("mongo"), logger.Error(err))
			return
		}
		log.Info("connected to mongo", logger.Component("mongo"), slog.String("database", cfg.Mongo.Database))
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg, metrics.WithLogger(log.With(logger.Component("store"))))

	db := client.Database(cfg.Mongo.Database)
	collection := func(name string) store.Collection {
		return collector.InstrumentCollection(store.NewMongoCollection(db, name))
	}

	sessionLog := log.With(logger.Component("session"))
	issuer, err := session.NewIssuer(cfg.Session, session.WithLogger(sessionLog))
	if err != nil {
		return err
	}
	guard, err := session.NewGuard(cfg.Session, session.WithLogger(sessionLog))
	if err != nil {
		return err
	}

	readyChecks := []func(context.Context) error{mongo.Healthcheck(client)}

	var limitStore ratelimiter.Store
	if cfg.Redis.Enabled() {
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		limitStore = ratelimiter.NewRedisStore(rdb)
		readyChecks = append(readyChecks, redis.Healthcheck(rdb))
	} else {
		memStore := ratelimiter.NewMemoryStore()
		defer memStore.Close()
		limitStore = memStore
	}
	limiter, err := ratelimiter.NewBucket(limitStore, cfg.API.SessionLimit)
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Deps{
		Log:            log,
		Accounts:       resource.NewAccounts(collection(resource.AccountsCollection)),
		Foods:          resource.NewFoods(collection(resource.FoodsCollection)),
		Requests:       resource.NewRequests(collection(resource.RequestsCollection)),
		Issuer:         issuer,
		Guard:          guard,
		Metrics:        collector,
		Gatherer:       reg,
		SessionLimiter: limiter,
		ReadyChecks:    readyChecks,
		Config:         cfg.API,
	})

	server := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("food station API is listening", slog.String("addr", cfg.HTTP.ListenAddr()))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("food station API stopped")
		}),
	)

	return server.Run(ctx, router)
}

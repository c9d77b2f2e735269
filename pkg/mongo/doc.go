// Package mongo manages the process-wide MongoDB client.
//
// The connection string comes from Config: either a full MONGODB_URL or an
// Atlas SRV URI assembled from DB_USER, DB_PASS and MONGODB_HOST. Stable API
// v1 is pinned in strict mode by default.
//
// Connect only validates the configuration and returns a lazily connecting
// client, which lets a service start serving while the database is still
// unreachable. New additionally waits for a successful ping, retrying with a
// fixed interval. Healthcheck adapts a client to readiness probes.
//
// # Usage
//
//	client, err := mongo.Connect(cfg)
//	if err != nil {
//		log.Fatal(err) // bad configuration
//	}
//	defer client.Disconnect(context.Background())
//
//	go func() {
//		if err := mongo.WaitReady(ctx, client, cfg.RetryAttempts, cfg.RetryInterval); err != nil {
//			log.Println("mongo is unavailable:", err)
//		}
//	}()
//
//	db := client.Database(cfg.Database)
//
// Errors are sentinels usable with errors.Is.
//
// See https://pkg.go.dev/go.mongodb.org/mongo-driver/v2 for the driver itself.
package mongo

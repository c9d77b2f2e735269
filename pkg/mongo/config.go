package mongo

import (
	"fmt"
	"net/url"
	"time"
)

// Config represents the configuration for the database.
//
// ConnectionURL wins when set; otherwise an Atlas SRV URI is assembled from
// User, Password, Host and AppName.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL"`                                  // ConnectionURL is the full connection string.
	User            string        `env:"DB_USER"`                                      // User is the Atlas user, used when ConnectionURL is empty.
	Password        string        `env:"DB_PASS"`                                      // Password is the Atlas password, used when ConnectionURL is empty.
	Host            string        `env:"MONGODB_HOST"`                                 // Host is the Atlas cluster host, used when ConnectionURL is empty.
	AppName         string        `env:"MONGODB_APP_NAME" envDefault:"Cluster0"`       // AppName is reported to the server.
	Database        string        `env:"MONGODB_DATABASE" envDefault:"foodStation"`    // Database holds every collection of the service.
	StrictAPI       bool          `env:"MONGODB_STRICT_API" envDefault:"true"`         // StrictAPI pins Stable API v1 in strict mode.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // MaxPoolSize is the maximum number of pooled connections.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // MinPoolSize is the minimum number of pooled connections.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // MaxConnIdleTime is how long a pooled connection may stay idle.
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`       // RetryWrites specifies whether to retry write operations.
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`        // RetryReads specifies whether to retry read operations.
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // RetryAttempts is the number of startup ping attempts.
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // RetryInterval is the pause between startup ping attempts.
}

// URI returns the connection string described by the config.
func (c Config) URI() (string, error) {
	if c.ConnectionURL != "" {
		return c.ConnectionURL, nil
	}
	if c.User == "" || c.Password == "" || c.Host == "" {
		return "", ErrMissingConnectionURL
	}

	u := url.URL{
		Scheme: "mongodb+srv",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host,
		Path:   "/",
	}
	q := url.Values{}
	q.Set("retryWrites", fmt.Sprint(c.RetryWrites))
	q.Set("w", "majority")
	if c.AppName != "" {
		q.Set("appName", c.AppName)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

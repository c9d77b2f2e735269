package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrMissingConnectionURL   = errors.New("mongo: MONGODB_URL or DB_USER, DB_PASS and MONGODB_HOST must be set")
	ErrInvalidConfig          = errors.New("mongo: invalid client configuration")
)

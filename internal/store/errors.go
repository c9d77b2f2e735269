package store

import "errors"

var (
	ErrNotFound  = errors.New("store: document not found")
	ErrInvalidID = errors.New("store: invalid document id")
)

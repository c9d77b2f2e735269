package resource

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("resource not found")
	ErrRequiredFieldsMissing = errors.New("required fields missing")
	ErrNoRequestsForEmail    = fmt.Errorf("no requests found for this email: %w", ErrNotFound)
)

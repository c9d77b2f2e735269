package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with an HTTP status and a client-facing message.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError. An empty message falls back to the status text.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

func (e HTTPError) Error() string {
	return e.Message
}

// Render writes e as a Message response, so middleware outside Wrap can
// answer with the same body shape.
func (e HTTPError) Render(w http.ResponseWriter, r *http.Request) error {
	return Message(e.Code, e.Message).Render(w, r)
}

var (
	ErrUnauthorized    = NewHTTPError(http.StatusUnauthorized, "unauthorized access")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternal        = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

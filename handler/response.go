package handler

import (
	"encoding/json"
	"net/http"
)

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithStatus sets custom HTTP status code
func WithStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON renders v as the response body.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MessageBody is the body of Message responses.
type MessageBody struct {
	Message string `json:"message"`
}

// Message renders {"message": msg} with the given status.
func Message(status int, msg string) Response {
	return jsonResponse{status: status, body: MessageBody{Message: msg}}
}

type textResponse struct {
	status int
	text   string
}

func (t textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(t.status)
	_, err := w.Write([]byte(t.text))
	return err
}

// Text renders a plain text body with status 200.
func Text(text string) Response {
	return textResponse{status: http.StatusOK, text: text}
}

// errorResponse hands err to the ErrorHandler without writing anything.
type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that delegates err to the configured ErrorHandler.
func Error(err error) Response {
	return errorResponse{err: err}
}

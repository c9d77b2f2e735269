package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/foodstation/pkg/binder"
)

// HandlerFunc handles one request whose input has been bound into R.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter.
// A non-nil error from Render is passed to the ErrorHandler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind populates v, a pointer to the request struct, from r.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports binding and rendering failures to the client.
type ErrorHandler func(ctx Context, err error)

// Option configures Wrap.
type Option func(*options)

type options struct {
	binders []Bind
	onError ErrorHandler
}

// WithBinders appends binders. They run in order and all of them must succeed;
// binders returning binder.ErrBinderNotApplicable are skipped.
func WithBinders(binders ...Bind) Option {
	return func(o *options) {
		o.binders = append(o.binders, binders...)
	}
}

// WithErrorHandler replaces the default handler, which renders the error
// without logging it.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		if h != nil {
			o.onError = h
		}
	}
}

func renderError(ctx Context, err error) {
	httpErr := Classify(err)
	_ = Message(httpErr.Code, httpErr.Message).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap adapts h to net/http.
func Wrap[R any](h HandlerFunc[R], opts ...Option) http.HandlerFunc {
	o := options{onError: renderError}
	for _, opt := range opts {
		opt(&o)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		for _, bind := range o.binders {
			err := bind(r, &req)
			if err == nil || errors.Is(err, binder.ErrBinderNotApplicable) {
				continue
			}
			o.onError(ctx, err)
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			o.onError(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			o.onError(ctx, err)
		}
	}
}

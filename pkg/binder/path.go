package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Path creates a path parameter binder function using the provided extractor,
// typically chi.URLParam. Fields are matched by the `path` tag. Values are
// percent-decoded, since chi matches against the raw path when one is set:
//
//	type foodByIDRequest struct {
//		ID string `path:"id"`
//	}
//
//	r.Get("/food/{id}", handler.Wrap(h,
//		handler.WithBinders(binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}

		var decodeErr error
		err := bindTagged(v, "path", func(name string) []string {
			raw := extractor(r, name)
			if raw == "" {
				return nil
			}
			value, err := url.PathUnescape(raw)
			if err != nil {
				if decodeErr == nil {
					decodeErr = fmt.Errorf("%w: %s: %v", ErrFailedToParsePath, name, err)
				}
				return nil
			}
			return []string{value}
		}, ErrFailedToParsePath)
		if decodeErr != nil {
			return decodeErr
		}
		return err
	}
}

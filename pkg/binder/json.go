package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// bodyTag marks the struct field that receives the whole decoded body.
const bodyTag = "body"

// JSON creates a JSON binder function.
//
// By default the body is decoded into the target struct in strict mode.
// A field tagged `body:"json"` receives the entire body instead, which is how
// schemaless documents are bound:
//
//	type createFoodRequest struct {
//		Doc map[string]any `body:"json"`
//	}
//
// A body bound to a map must be a JSON object.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
		}

		target, strict, err := jsonTarget(v)
		if err != nil {
			return err
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if strict {
			decoder.DisallowUnknownFields()
		}
		if err := decoder.Decode(target); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		if m := reflect.ValueOf(target).Elem(); m.Kind() == reflect.Map && m.IsNil() {
			return fmt.Errorf("%w: body must be a JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}

// OptionalJSON is JSON for endpoints whose body may be omitted. A request
// without Content-Type is skipped with ErrBinderNotApplicable, leaving the
// target at its zero value.
func OptionalJSON() func(r *http.Request, v any) error {
	bind := JSON()
	return func(r *http.Request, v any) error {
		if r.Header.Get("Content-Type") == "" {
			return ErrBinderNotApplicable
		}
		return bind(r, v)
	}
}

// jsonTarget returns the value the body decodes into: the `body:"json"` field
// when present, otherwise v itself.
func jsonTarget(v any) (target any, strict bool, err error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return nil, false, ErrInvalidTarget
	}

	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return v, false, nil
	}

	rt := elem.Type()
	for i := range elem.NumField() {
		if rt.Field(i).Tag.Get(bodyTag) == "json" && elem.Field(i).CanSet() {
			return elem.Field(i).Addr().Interface(), false, nil
		}
	}

	return v, true, nil
}

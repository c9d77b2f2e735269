package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/foodstation/internal/store"
)

// Collection names in the foodStation database.
const (
	AccountsCollection = "users"
	FoodsCollection    = "food"
	RequestsCollection = "request"
)

// EmptyPolicy decides whether a list with no results is an error.
type EmptyPolicy int

const (
	// EmptyIsOK returns an empty list.
	EmptyIsOK EmptyPolicy = iota
	// EmptyIsNotFound returns ErrNotFound.
	EmptyIsNotFound
)

func (p EmptyPolicy) String() string {
	switch p {
	case EmptyIsOK:
		return "empty_is_ok"
	case EmptyIsNotFound:
		return "empty_is_not_found"
	default:
		return fmt.Sprintf("EmptyPolicy(%d)", int(p))
	}
}

// list runs filter against c and applies policy to an empty result.
// A non-nil slice is always returned on success so it encodes as [].
func list(ctx context.Context, c store.Collection, filter store.Filter, policy EmptyPolicy) ([]store.Document, error) {
	docs, err := c.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.Name(), err)
	}
	if len(docs) == 0 {
		if policy == EmptyIsNotFound {
			return nil, ErrNotFound
		}
		return []store.Document{}, nil
	}
	return docs, nil
}

// get treats a malformed id as a missing document.
func get(ctx context.Context, c store.Collection, id string) (store.Document, error) {
	doc, err := c.FindByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("get %s: %w", c.Name(), err)
	}
	return doc, nil
}

func insert(ctx context.Context, c store.Collection, doc store.Document) (store.InsertResult, error) {
	res, err := c.Insert(ctx, doc)
	if err != nil {
		return store.InsertResult{}, fmt.Errorf("insert %s: %w", c.Name(), err)
	}
	return res, nil
}

// remove reports zero deletions for a malformed id.
func remove(ctx context.Context, c store.Collection, id string) (store.DeleteResult, error) {
	res, err := c.DeleteByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return store.DeleteResult{Acknowledged: true}, nil
	case err != nil:
		return store.DeleteResult{}, fmt.Errorf("delete %s: %w", c.Name(), err)
	}
	return res, nil
}

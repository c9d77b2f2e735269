package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/foodstation/internal/store"
	"github.com/dmitrymomot/foodstation/pkg/logger"
)

// Store operation results.
const (
	ResultOK        = "ok"
	ResultNotFound  = "not_found"
	ResultInvalidID = "invalid_id"
	ResultError     = "error"
)

// instrumentedCollection records every call on the wrapped collection.
type instrumentedCollection struct {
	next store.Collection
	c    *Collector
}

// InstrumentCollection wraps coll so each operation is counted and timed.
func (c *Collector) InstrumentCollection(coll store.Collection) store.Collection {
	return &instrumentedCollection{next: coll, c: c}
}

func (ic *instrumentedCollection) observe(ctx context.Context, op string, start time.Time, err error) {
	result := resultOf(err)
	ic.c.RecordStoreOperation(ic.next.Name(), op, result, time.Since(start))
	if result == ResultError {
		ic.c.log.ErrorContext(ctx, "store operation failed",
			logger.Collection(ic.next.Name()),
			logger.Operation(op),
			logger.Error(err),
		)
	}
}

func (ic *instrumentedCollection) Name() string {
	return ic.next.Name()
}

func (ic *instrumentedCollection) Find(ctx context.Context, filter store.Filter) ([]store.Document, error) {
	start := time.Now()
	docs, err := ic.next.Find(ctx, filter)
	ic.observe(ctx, "find", start, err)
	return docs, err
}

func (ic *instrumentedCollection) FindByID(ctx context.Context, id string) (store.Document, error) {
	start := time.Now()
	doc, err := ic.next.FindByID(ctx, id)
	ic.observe(ctx, "find_by_id", start, err)
	return doc, err
}

func (ic *instrumentedCollection) Insert(ctx context.Context, doc store.Document) (store.InsertResult, error) {
	start := time.Now()
	res, err := ic.next.Insert(ctx, doc)
	ic.observe(ctx, "insert", start, err)
	return res, err
}

func (ic *instrumentedCollection) UpdateByID(ctx context.Context, id string, fields store.Document) (store.UpdateResult, error) {
	start := time.Now()
	res, err := ic.next.UpdateByID(ctx, id, fields)
	ic.observe(ctx, "update_by_id", start, err)
	return res, err
}

func (ic *instrumentedCollection) DeleteByID(ctx context.Context, id string) (store.DeleteResult, error) {
	start := time.Now()
	res, err := ic.next.DeleteByID(ctx, id)
	ic.observe(ctx, "delete_by_id", start, err)
	return res, err
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, store.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, store.ErrInvalidID):
		return ResultInvalidID
	default:
		return ResultError
	}
}

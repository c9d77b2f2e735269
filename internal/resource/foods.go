package resource

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dmitrymomot/foodstation/internal/store"
)

// Fields every food update must carry with a non-empty value.
const (
	FieldFoodName     = "food_name"
	FieldFoodQuantity = "food_quantity"
	FieldEmail        = "email"
)

// Foods stores listed food items.
type Foods struct {
	coll store.Collection
}

func NewFoods(coll store.Collection) *Foods {
	return &Foods{coll: coll}
}

// List returns all food items, or only those owned by email when it is not empty.
func (f *Foods) List(ctx context.Context, email string) ([]store.Document, error) {
	var filter store.Filter
	if email != "" {
		filter = store.Filter{FieldEmail: email}
	}
	return list(ctx, f.coll, filter, EmptyIsOK)
}

// Get returns the food item with id. Malformed or unknown ids yield ErrNotFound.
func (f *Foods) Get(ctx context.Context, id string) (store.Document, error) {
	return get(ctx, f.coll, id)
}

// Create stores doc as is.
func (f *Foods) Create(ctx context.Context, doc store.Document) (store.InsertResult, error) {
	return insert(ctx, f.coll, doc)
}

// Update sets fields on the food item with id. FieldFoodName and
// FieldFoodQuantity must both be present and not empty, otherwise
// ErrRequiredFieldsMissing is returned without touching the store. Any id in
// fields is ignored. Malformed or unknown ids yield ErrNotFound.
func (f *Foods) Update(ctx context.Context, id string, fields store.Document) error {
	if isEmpty(fields[FieldFoodName]) || isEmpty(fields[FieldFoodQuantity]) {
		return ErrRequiredFieldsMissing
	}

	set := make(store.Document, len(fields))
	for k, v := range fields {
		if k != store.IDField {
			set[k] = v
		}
	}

	res, err := f.coll.UpdateByID(ctx, id, set)
	if err != nil {
		if errors.Is(err, store.ErrInvalidID) {
			return ErrNotFound
		}
		return fmt.Errorf("update %s: %w", f.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the food item with id. A missing item is not an error.
func (f *Foods) Delete(ctx context.Context, id string) (store.DeleteResult, error) {
	return remove(ctx, f.coll, id)
}

// isEmpty reports whether v counts as a missing value: absent, null, "",
// zero, NaN or false.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0 || math.IsNaN(val)
	case float32:
		return val == 0 || math.IsNaN(float64(val))
	case int:
		return val == 0
	case int32:
		return val == 0
	case int64:
		return val == 0
	default:
		return false
	}
}

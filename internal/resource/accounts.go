package resource

import (
	"context"

	"github.com/dmitrymomot/foodstation/internal/store"
)

// Accounts stores user account records. Duplicates are permitted.
type Accounts struct {
	coll store.Collection
}

func NewAccounts(coll store.Collection) *Accounts {
	return &Accounts{coll: coll}
}

// List returns every account.
func (a *Accounts) List(ctx context.Context) ([]store.Document, error) {
	return list(ctx, a.coll, nil, EmptyIsOK)
}

// Create stores doc as is.
func (a *Accounts) Create(ctx context.Context, doc store.Document) (store.InsertResult, error) {
	return insert(ctx, a.coll, doc)
}

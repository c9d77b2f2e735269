package resource

import (
	"context"
	"errors"

	"github.com/dmitrymomot/foodstation/internal/store"
)

// FieldDonatorEmail is the nested field requests are looked up by.
const FieldDonatorEmail = "donator.email"

// Requests stores donation requests. Requests are never updated.
type Requests struct {
	coll store.Collection
}

func NewRequests(coll store.Collection) *Requests {
	return &Requests{coll: coll}
}

// List returns every request.
func (q *Requests) List(ctx context.Context) ([]store.Document, error) {
	return list(ctx, q.coll, nil, EmptyIsOK)
}

// FindByDonatorEmail returns the requests whose donator.email equals email.
// An empty result is ErrNoRequestsForEmail.
func (q *Requests) FindByDonatorEmail(ctx context.Context, email string) ([]store.Document, error) {
	docs, err := list(ctx, q.coll, store.Filter{FieldDonatorEmail: email}, EmptyIsNotFound)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoRequestsForEmail
	}
	return docs, err
}

// Create stores doc as is.
func (q *Requests) Create(ctx context.Context, doc store.Document) (store.InsertResult, error) {
	return insert(ctx, q.coll, doc)
}

// Delete removes the request with id. A missing request is not an error.
func (q *Requests) Delete(ctx context.Context, id string) (store.DeleteResult, error) {
	return remove(ctx, q.coll, id)
}

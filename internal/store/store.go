package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// IDField is the primary key of every document.
const IDField = "_id"

// Document is a schemaless record. IDField holds a 24-char hex string once
// the document has been read back from a Collection.
type Document map[string]any

// ID returns the document id, or "" when it has none.
func (d Document) ID() string {
	id, _ := d[IDField].(string)
	return id
}

// Filter is an equality filter. Keys may be dotted paths into nested
// documents, e.g. "donator.email".
type Filter map[string]any

// InsertResult acknowledges an insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges an update.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult acknowledges a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Collection is a named set of documents.
//
// Insert always assigns a fresh id and ignores any IDField in doc.
// FindByID, UpdateByID and DeleteByID return ErrInvalidID for ids that are
// not 24-char hex strings. FindByID returns ErrNotFound when nothing matches;
// UpdateByID and DeleteByID report zero counts instead.
type Collection interface {
	Name() string
	Find(ctx context.Context, filter Filter) ([]Document, error)
	FindByID(ctx context.Context, id string) (Document, error)
	Insert(ctx context.Context, doc Document) (InsertResult, error)
	UpdateByID(ctx context.Context, id string, fields Document) (UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
}

// ParseID converts a hex id into an ObjectID.
func ParseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// NewID generates a fresh hex id.
func NewID() string {
	return bson.NewObjectID().Hex()
}

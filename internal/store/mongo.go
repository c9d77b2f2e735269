package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoCollection is a Collection backed by a MongoDB collection.
type MongoCollection struct {
	coll *mongo.Collection
}

// NewMongoCollection returns the collection name of db.
func NewMongoCollection(db *mongo.Database, name string) *MongoCollection {
	return &MongoCollection{coll: db.Collection(name)}
}

func (c *MongoCollection) Name() string {
	return c.coll.Name()
}

func (c *MongoCollection) Find(ctx context.Context, filter Filter) ([]Document, error) {
	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}

	cursor, err := c.coll.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.Name(), err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.Name(), err)
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, normalizeDocument(m))
	}
	return docs, nil
}

func (c *MongoCollection) FindByID(ctx context.Context, id string) (Document, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var raw bson.M
	if err := c.coll.FindOne(ctx, bson.M{IDField: oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s in %s: %w", id, c.Name(), err)
	}
	return normalizeDocument(raw), nil
}

func (c *MongoCollection) Insert(ctx context.Context, doc Document) (InsertResult, error) {
	oid := bson.NewObjectID()
	record := make(bson.M, len(doc)+1)
	for k, v := range doc {
		record[k] = v
	}
	record[IDField] = oid

	res, err := c.coll.InsertOne(ctx, record)
	if err != nil {
		return InsertResult{}, fmt.Errorf("insert into %s: %w", c.Name(), err)
	}
	return InsertResult{Acknowledged: res.Acknowledged, InsertedID: oid.Hex()}, nil
}

func (c *MongoCollection) UpdateByID(ctx context.Context, id string, fields Document) (UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return UpdateResult{}, err
	}

	set := bson.M{}
	for k, v := range fields {
		if k != IDField {
			set[k] = v
		}
	}

	res, err := c.coll.UpdateOne(ctx, bson.M{IDField: oid}, bson.M{"$set": set})
	if err != nil {
		return UpdateResult{}, fmt.Errorf("update %s in %s: %w", id, c.Name(), err)
	}
	return UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (c *MongoCollection) DeleteByID(ctx context.Context, id string) (DeleteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return DeleteResult{}, err
	}

	res, err := c.coll.DeleteOne(ctx, bson.M{IDField: oid})
	if err != nil {
		return DeleteResult{}, fmt.Errorf("delete %s in %s: %w", id, c.Name(), err)
	}
	return DeleteResult{Acknowledged: res.Acknowledged, DeletedCount: res.DeletedCount}, nil
}

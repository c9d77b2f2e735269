package store

import (
	"context"
	"reflect"
	"strings"
	"sync"
)

// Memory is an in-process Collection. It keeps insertion order and hands out
// deep copies, so callers never share state with the collection.
type Memory struct {
	name string

	mu   sync.RWMutex
	docs []Document
}

// NewMemory creates an empty in-memory collection.
func NewMemory(name string) *Memory {
	return &Memory{name: name}
}

func (m *Memory) Name() string {
	return m.name
}

func (m *Memory) Find(ctx context.Context, filter Filter) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]Document, 0, len(m.docs))
	for _, doc := range m.docs {
		if matches(doc, filter) {
			docs = append(docs, normalizeDocument(doc))
		}
	}
	return docs, nil
}

func (m *Memory) FindByID(ctx context.Context, id string) (Document, error) {
	if _, err := ParseID(id); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexOf(id); i >= 0 {
		return normalizeDocument(m.docs[i]), nil
	}
	return nil, ErrNotFound
}

func (m *Memory) Insert(ctx context.Context, doc Document) (InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return InsertResult{}, err
	}

	record := normalizeDocument(doc)
	record[IDField] = NewID()

	m.mu.Lock()
	m.docs = append(m.docs, record)
	m.mu.Unlock()

	return InsertResult{Acknowledged: true, InsertedID: record.ID()}, nil
}

func (m *Memory) UpdateByID(ctx context.Context, id string, fields Document) (UpdateResult, error) {
	if _, err := ParseID(id); err != nil {
		return UpdateResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return UpdateResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return UpdateResult{Acknowledged: true}, nil
	}

	modified := false
	for k, v := range normalizeDocument(fields) {
		if k == IDField {
			continue
		}
		if old, ok := m.docs[i][k]; !ok || !reflect.DeepEqual(old, v) {
			m.docs[i][k] = v
			modified = true
		}
	}

	res := UpdateResult{Acknowledged: true, MatchedCount: 1}
	if modified {
		res.ModifiedCount = 1
	}
	return res, nil
}

func (m *Memory) DeleteByID(ctx context.Context, id string) (DeleteResult, error) {
	if _, err := ParseID(id); err != nil {
		return DeleteResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return DeleteResult{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return DeleteResult{Acknowledged: true}, nil
	}
	m.docs = append(m.docs[:i], m.docs[i+1:]...)
	return DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

// indexOf must be called with mu held.
func (m *Memory) indexOf(id string) int {
	for i, doc := range m.docs {
		if doc.ID() == id {
			return i
		}
	}
	return -1
}

func matches(doc Document, filter Filter) bool {
	for path, want := range filter {
		got, ok := lookup(doc, path)
		if !ok || !reflect.DeepEqual(got, normalize(want)) {
			return false
		}
	}
	return true
}

// lookup resolves a dotted path through nested documents.
func lookup(doc map[string]any, path string) (any, bool) {
	head, rest, nested := strings.Cut(path, ".")
	v, ok := doc[head]
	if !ok || !nested {
		return v, ok
	}
	child, isMap := v.(map[string]any)
	if !isMap {
		return nil, false
	}
	return lookup(child, rest)
}

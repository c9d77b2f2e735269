package resource_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/foodstation/internal/store"
)

// mockCollection is a testify mock of store.Collection
type mockCollection struct {
	mock.Mock
}

func (m *mockCollection) Name() string {
	return "mock"
}

func (m *mockCollection) Find(ctx context.Context, filter store.Filter) ([]store.Document, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Document), args.Error(1)
}

func (m *mockCollection) FindByID(ctx context.Context, id string) (store.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(store.Document), args.Error(1)
}

func (m *mockCollection) Insert(ctx context.Context, doc store.Document) (store.InsertResult, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(store.InsertResult), args.Error(1)
}

func (m *mockCollection) UpdateByID(ctx context.Context, id string, fields store.Document) (store.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(store.UpdateResult), args.Error(1)
}

func (m *mockCollection) DeleteByID(ctx context.Context, id string) (store.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(store.DeleteResult), args.Error(1)
}

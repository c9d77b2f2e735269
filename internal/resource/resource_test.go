package resource_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/foodstation/internal/resource"
	"github.com/dmitrymomot/foodstation/internal/store"
)

var errConnection = errors.New("connection refused")

func TestFoodsUpdateRequiredFields(t *testing.T) {
	t.Parallel()

	type value struct {
		name    string
		present bool
		v       any
		truthy  bool
	}
	names := []value{
		{"absent", false, nil, false},
		{"null", true, nil, false},
		{"empty", true, "", false},
		{"set", true, "Rice", true},
	}
	quantities := []value{
		{"absent", false, nil, false},
		{"null", true, nil, false},
		{"empty", true, "", false},
		{"zero", true, float64(0), false},
		{"false", true, false, false},
		{"number", true, float64(3), true},
		{"string", true, "3 kg", true},
	}

	for _, n := range names {
		for _, q := range quantities {
			t.Run(fmt.Sprintf("name %s quantity %s", n.name, q.name), func(t *testing.T) {
				t.Parallel()
				ctx := context.Background()
				foods := resource.NewFoods(store.NewMemory(resource.FoodsCollection))

				ins, err := foods.Create(ctx, store.Document{"food_name": "Old", "food_quantity": float64(1), "email": "a@x"})
				require.NoError(t, err)

				fields := store.Document{"notes": "fresh"}
				if n.present {
					fields["food_name"] = n.v
				}
				if q.present {
					fields["food_quantity"] = q.v
				}

				err = foods.Update(ctx, ins.InsertedID, fields)
				doc, getErr := foods.Get(ctx, ins.InsertedID)
				require.NoError(t, getErr)

				if n.truthy && q.truthy {
					require.NoError(t, err)
					assert.Equal(t, n.v, doc["food_name"])
					assert.Equal(t, q.v, doc["food_quantity"])
					assert.Equal(t, "fresh", doc["notes"])
					return
				}
				assert.ErrorIs(t, err, resource.ErrRequiredFieldsMissing)
				assert.Equal(t, "Old", doc["food_name"])
				assert.NotContains(t, doc, "notes")
			})
		}
	}
}

func TestFoodsUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	valid := store.Document{"food_name": "Rice", "food_quantity": float64(5)}

	t.Run("unknown id", func(t *testing.T) {
		foods := resource.NewFoods(store.NewMemory(resource.FoodsCollection))
		err := foods.Update(ctx, store.NewID(), valid)
		assert.ErrorIs(t, err, resource.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		foods := resource.NewFoods(store.NewMemory(resource.FoodsCollection))
		err := foods.Update(ctx, "abc", valid)
		assert.ErrorIs(t, err, resource.ErrNotFound)
	})

	t.Run("id in payload is ignored", func(t *testing.T) {
		foods := resource.NewFoods(store.NewMemory(resource.FoodsCollection))
		ins, err := foods.Create(ctx, store.Document{"food_name": "Old", "food_quantity": float64(1)})
		require.NoError(t, err)

		err = foods.Update(ctx, ins.InsertedID, store.Document{"_id": store.NewID(), "food_name": "Rice", "food_quantity": float64(5)})
		require.NoError(t, err)

		doc, err := foods.Get(ctx, ins.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, ins.InsertedID, doc.ID())
	})

	t.Run("missing fields never reach the store", func(t *testing.T) {
		coll := &mockCollection{}
		foods := resource.NewFoods(coll)

		err := foods.Update(ctx, store.NewID(), store.Document{"food_name": "Rice"})
		assert.ErrorIs(t, err, resource.ErrRequiredFieldsMissing)
		coll.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		coll := &mockCollection{}
		id := store.NewID()
		coll.On("UpdateByID", mock.Anything, id, mock.MatchedBy(func(d store.Document) bool {
			_, hasID := d["_id"]
			return d["food_name"] == "Rice" && !hasID
		})).Return(store.UpdateResult{}, errConnection).Once()

		err := resource.NewFoods(coll).Update(ctx, id, store.Document{"_id": "x", "food_name": "Rice", "food_quantity": float64(5)})
		assert.ErrorIs(t, err, errConnection)
		assert.NotErrorIs(t, err, resource.ErrNotFound)
		coll.AssertExpectations(t)
	})
}

func TestFoodsGetAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	foods := resource.NewFoods(store.NewMemory(resource.FoodsCollection))

	_, err := foods.Get(ctx, "not-hex")
	assert.ErrorIs(t, err, resource.ErrNotFound)
	_, err = foods.Get(ctx, store.NewID())
	assert.ErrorIs(t, err, resource.ErrNotFound)

	res, err := foods.Delete(ctx, "not-hex")
	require.NoError(t, err)
	assert.Equal(t, store.DeleteResult{Acknowledged: true}, res)

	res, err = foods.Delete(ctx, store.NewID())
	require.NoError(t, err)
	assert.Zero(t, res.DeletedCount)
}

func TestListEmptyPolicies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	foods := resource.NewFoods(store.NewMemory(resource.FoodsCollection))
	docs, err := foods.List(ctx, "nobody@x")
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)

	accounts := resource.NewAccounts(store.NewMemory(resource.AccountsCollection))
	docs, err = accounts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	requests := resource.NewRequests(store.NewMemory(resource.RequestsCollection))
	docs, err = requests.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = requests.FindByDonatorEmail(ctx, "nobody@x")
	assert.ErrorIs(t, err, resource.ErrNoRequestsForEmail)
	assert.ErrorIs(t, err, resource.ErrNotFound)

	assert.Equal(t, "empty_is_ok", resource.EmptyIsOK.String())
	assert.Equal(t, "empty_is_not_found", resource.EmptyIsNotFound.String())
}

func TestAccounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	accounts := resource.NewAccounts(store.NewMemory(resource.AccountsCollection))

	for range 2 {
		res, err := accounts.Create(ctx, store.Document{"email": "a@x", "name": "Ann"})
		require.NoError(t, err)
		assert.True(t, res.Acknowledged)
	}

	docs, err := accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.NotEqual(t, docs[0].ID(), docs[1].ID())
}

func TestFoodScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	foods := resource.NewFoods(store.NewMemory(resource.FoodsCollection))

	ins, err := foods.Create(ctx, store.Document{"food_name": "Rice", "food_quantity": float64(5), "email": "a@x"})
	require.NoError(t, err)
	assert.True(t, ins.Acknowledged)

	mine, err := foods.List(ctx, "a@x")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, ins.InsertedID, mine[0].ID())

	require.NoError(t, foods.Update(ctx, ins.InsertedID, store.Document{"food_name": "Rice", "food_quantity": float64(3)}))

	doc, err := foods.Get(ctx, ins.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, float64(3), doc["food_quantity"])
	assert.Equal(t, "a@x", doc["email"])

	del, err := foods.Delete(ctx, ins.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	_, err = foods.Get(ctx, ins.InsertedID)
	assert.ErrorIs(t, err, resource.ErrNotFound)
}

func TestRequestScenario(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	requests := resource.NewRequests(store.NewMemory(resource.RequestsCollection))

	ins, err := requests.Create(ctx, store.Document{
		"donator": map[string]any{"email": "d@x"},
		"food_id": store.NewID(),
	})
	require.NoError(t, err)
	_, err = requests.Create(ctx, store.Document{"donator": map[string]any{"email": "other@x"}})
	require.NoError(t, err)

	found, err := requests.FindByDonatorEmail(ctx, "d@x")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, ins.InsertedID, found[0].ID())

	del, err := requests.Delete(ctx, ins.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	_, err = requests.FindByDonatorEmail(ctx, "d@x")
	assert.ErrorIs(t, err, resource.ErrNoRequestsForEmail)

	all, err := requests.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStoreFailuresPropagate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	coll := &mockCollection{}
	coll.On("Find", mock.Anything, mock.Anything).Return(nil, errConnection)
	coll.On("FindByID", mock.Anything, mock.Anything).Return(nil, errConnection)
	coll.On("Insert", mock.Anything, mock.Anything).Return(store.InsertResult{}, errConnection)
	coll.On("DeleteByID", mock.Anything, mock.Anything).Return(store.DeleteResult{}, errConnection)

	foods := resource.NewFoods(coll)
	requests := resource.NewRequests(coll)

	_, err := foods.List(ctx, "")
	assert.ErrorIs(t, err, errConnection)
	_, err = foods.Get(ctx, store.NewID())
	assert.ErrorIs(t, err, errConnection)
	assert.NotErrorIs(t, err, resource.ErrNotFound)
	_, err = foods.Create(ctx, store.Document{})
	assert.ErrorIs(t, err, errConnection)
	_, err = foods.Delete(ctx, store.NewID())
	assert.ErrorIs(t, err, errConnection)

	_, err = requests.FindByDonatorEmail(ctx, "d@x")
	assert.ErrorIs(t, err, errConnection)
	assert.NotErrorIs(t, err, resource.ErrNoRequestsForEmail)

	_, err = resource.NewAccounts(coll).List(ctx)
	assert.ErrorIs(t, err, errConnection)
}

package orders_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"shipping/internal/core/application/orders"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPartyResolver struct{ mock.Mock }

func (m *MockPartyResolver) CustomerID(ctx context.Context, name kernel.PartyName) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPartyResolver) ShipperID(ctx context.Context, name kernel.PartyName) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Insert(ctx context.Context, customerID int64, shipperID int64,
	weight kernel.Weight, distance kernel.Distance, cost float64,
) (int64, error) {
	args := m.Called(ctx, customerID, shipperID, weight, distance, cost)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, orderID int64,
	weight kernel.Weight, distance kernel.Distance, cost float64,
) (bool, error) {
	args := m.Called(ctx, orderID, weight, distance, cost)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) LoadAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restoredOrder(t *testing.T, id int64, pounds float64, miles int, cost float64) *order.Order {
	t.Helper()
	w, err := kernel.NewWeight(pounds)
	require.NoError(t, err)
	d, err := kernel.NewDistance(miles)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, 1, 2, w, d, cost, "Alice", "Bob")
	require.NoError(t, err)
	return o
}

func TestManager_AddOrder(t *testing.T) {
	t.Run("valid order is inserted, cache grows by one with derived cost", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)

		resolver.On("CustomerID", ctx, mock.Anything).Return(int64(1), nil).Once()
		resolver.On("ShipperID", ctx, mock.Anything).Return(int64(2), nil).Once()
		repo.On("Insert", ctx, int64(1), int64(2), mock.Anything, mock.Anything, 7.88).
			Return(int64(10), nil).Once()
		repo.On("LoadAll", ctx).
			Return([]*order.Order{restoredOrder(t, 10, 10.5, 500, 7.88)}, nil).Once()

		m := orders.NewManager(resolver, repo, testLogger())

		assert.True(t, m.AddOrder(ctx, "Alice", "Bob", 10.5, 500))

		all := m.AllOrders()
		require.Len(t, all, 1)
		assert.InEpsilon(t, 7.88, all[0].Cost(), 1e-9)
		resolver.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("invalid names fail closed without store interaction", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)
		m := orders.NewManager(resolver, repo, testLogger())

		assert.False(t, m.AddOrder(ctx, "Agent 99", "Bob", 10, 100))
		assert.False(t, m.AddOrder(ctx, "Alice", "4PL Logistics", 10, 100))

		assert.Empty(t, m.AllOrders())
		resolver.AssertNotCalled(t, "CustomerID", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("out-of-range weight or distance fails closed", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)
		m := orders.NewManager(resolver, repo, testLogger())

		testCases := []struct {
			name     string
			weight   float64
			distance int
		}{
			{"zero weight", 0, 100},
			{"negative weight", -5, 100},
			{"weight above cap", 150.5, 100},
			{"zero distance", 10, 0},
			{"negative distance", 10, -1},
			{"distance above cap", 10, 3001},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.False(t, m.AddOrder(ctx, "Alice", "Bob", tc.weight, tc.distance))
			})
		}

		assert.Empty(t, m.AllOrders())
		resolver.AssertNotCalled(t, "CustomerID", mock.Anything, mock.Anything)
	})

	t.Run("resolver failure surfaces as false with cache unchanged", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)

		resolver.On("CustomerID", ctx, mock.Anything).
			Return(int64(0), errors.New("store connection lost")).Once()

		m := orders.NewManager(resolver, repo, testLogger())

		assert.False(t, m.AddOrder(ctx, "Alice", "Bob", 10.5, 500))
		assert.Empty(t, m.AllOrders())
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("insert failure surfaces as false", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)

		resolver.On("CustomerID", ctx, mock.Anything).Return(int64(1), nil).Once()
		resolver.On("ShipperID", ctx, mock.Anything).Return(int64(2), nil).Once()
		repo.On("Insert", ctx, int64(1), int64(2), mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), errors.New("constraint violation")).Once()

		m := orders.NewManager(resolver, repo, testLogger())

		assert.False(t, m.AddOrder(ctx, "Alice", "Bob", 10.5, 500))
		assert.Empty(t, m.AllOrders())
	})
}

func TestManager_UpdateOrder(t *testing.T) {
	t.Run("updates existing order and reloads cache", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)
		m := orders.NewManager(resolver, repo, testLogger())

		repo.On("LoadAll", ctx).
			Return([]*order.Order{restoredOrder(t, 7, 10.5, 500, 7.88)}, nil).Once()
		require.NoError(t, m.Refresh(ctx))

		repo.On("Update", ctx, int64(7), mock.Anything, mock.Anything, 0.30).
			Return(true, nil).Once()
		repo.On("LoadAll", ctx).
			Return([]*order.Order{restoredOrder(t, 7, 2.0, 100, 0.30)}, nil).Once()

		assert.True(t, m.UpdateOrder(ctx, 7, 2.0, 100))

		updated, found := m.FindOrder(7)
		require.True(t, found)
		assert.InEpsilon(t, 0.30, updated.Cost(), 1e-9)
		repo.AssertExpectations(t)
	})

	t.Run("unknown order fails closed without touching the store", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)
		m := orders.NewManager(resolver, repo, testLogger())

		assert.False(t, m.UpdateOrder(ctx, 404, 2.0, 100))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("out-of-range values fail closed", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)
		m := orders.NewManager(resolver, repo, testLogger())

		assert.False(t, m.UpdateOrder(ctx, 7, 200, 100))
		assert.False(t, m.UpdateOrder(ctx, 7, 10, 5000))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestManager_DeleteOrder(t *testing.T) {
	t.Run("delete then find reports absent, second delete returns false", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)
		m := orders.NewManager(resolver, repo, testLogger())

		repo.On("LoadAll", ctx).
			Return([]*order.Order{restoredOrder(t, 3, 10.5, 500, 7.88)}, nil).Once()
		require.NoError(t, m.Refresh(ctx))

		repo.On("Delete", ctx, int64(3)).Return(true, nil).Once()
		repo.On("LoadAll", ctx).Return([]*order.Order{}, nil).Once()

		assert.True(t, m.DeleteOrder(ctx, 3))

		_, found := m.FindOrder(3)
		assert.False(t, found)

		repo.On("Delete", ctx, int64(3)).Return(false, nil).Once()
		assert.False(t, m.DeleteOrder(ctx, 3))
		repo.AssertExpectations(t)
	})

	t.Run("failed delete skips the cache reload", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)
		m := orders.NewManager(resolver, repo, testLogger())

		repo.On("Delete", ctx, int64(9)).Return(false, errors.New("connection closed")).Once()

		assert.False(t, m.DeleteOrder(ctx, 9))
		repo.AssertNotCalled(t, "LoadAll", mock.Anything)
	})
}

func TestManager_Refresh(t *testing.T) {
	t.Run("failed reload keeps the previous cache", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)
		m := orders.NewManager(resolver, repo, testLogger())

		repo.On("LoadAll", ctx).
			Return([]*order.Order{restoredOrder(t, 1, 10.5, 500, 7.88)}, nil).Once()
		require.NoError(t, m.Refresh(ctx))

		repo.On("LoadAll", ctx).Return(nil, errors.New("connection closed")).Once()
		require.Error(t, m.Refresh(ctx))

		assert.Len(t, m.AllOrders(), 1)
	})
}

func TestManager_AllOrders(t *testing.T) {
	t.Run("returns a snapshot detached from later refreshes", func(t *testing.T) {
		ctx := t.Context()
		resolver := new(MockPartyResolver)
		repo := new(MockOrderRepository)
		m := orders.NewManager(resolver, repo, testLogger())

		repo.On("LoadAll", ctx).
			Return([]*order.Order{restoredOrder(t, 1, 10.5, 500, 7.88)}, nil).Once()
		require.NoError(t, m.Refresh(ctx))

		snapshot := m.AllOrders()

		repo.On("LoadAll", ctx).Return([]*order.Order{}, nil).Once()
		require.NoError(t, m.Refresh(ctx))

		assert.Len(t, snapshot, 1)
		assert.Empty(t, m.AllOrders())
	})
}

package orders

import (
	"context"
	"log/slog"
	"sync"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// Manager orchestrates all shipping order operations exposed to the
// presentation layer. Every input is validated before any store interaction,
// and every successful mutation ends with a full synchronous reload of the
// in-memory cache, so the cache observed by the next operation always
// reflects exactly what the store holds.
//
// Failures never escape as errors: validation problems, missing targets and
// store faults all surface as a false result, with the reason logged. The
// cache is left untouched on every failure path.
//
// The cache is a disposable projection guarded by an RWMutex; the store owns
// persistent identity.
type Manager struct {
	resolver ports.PartyResolver
	repo     ports.OrderRepository
	calc     services.ShippingCostCalculator
	logger   *slog.Logger

	mu    sync.RWMutex
	cache []*order.Order
}

// NewManager creates a Manager. The cache starts empty; call Refresh to
// populate it from the store.
func NewManager(resolver ports.PartyResolver, repo ports.OrderRepository, logger *slog.Logger) *Manager {
	return &Manager{
		resolver: resolver,
		repo:     repo,
		calc:     services.NewShippingCostCalculator(),
		logger:   logger.With("component", "order_manager"),
		cache:    make([]*order.Order, 0),
	}
}

// AddOrder validates the names and ranges, resolves both parties, derives
// the cost, inserts the order and reloads the cache. Returns false, with the
// store untouched, when any input is invalid; returns false on any store
// failure.
func (m *Manager) AddOrder(ctx context.Context, customerName string, shipperName string, weight float64, distance int) bool {
	custName, err := kernel.NewPartyName(customerName)
	if err != nil {
		m.logger.WarnContext(ctx, "add rejected: invalid customer name", "error", err)
		return false
	}

	shipName, err := kernel.NewPartyName(shipperName)
	if err != nil {
		m.logger.WarnContext(ctx, "add rejected: invalid shipper name", "error", err)
		return false
	}

	w, err := kernel.NewWeight(weight)
	if err != nil {
		m.logger.WarnContext(ctx, "add rejected: invalid weight", "error", err)
		return false
	}

	d, err := kernel.NewDistance(distance)
	if err != nil {
		m.logger.WarnContext(ctx, "add rejected: invalid distance", "error", err)
		return false
	}

	customerID, err := m.resolver.CustomerID(ctx, custName)
	if err != nil {
		m.logger.ErrorContext(ctx, "add failed: customer resolution", "error", err)
		return false
	}

	shipperID, err := m.resolver.ShipperID(ctx, shipName)
	if err != nil {
		m.logger.ErrorContext(ctx, "add failed: shipper resolution", "error", err)
		return false
	}

	cost := m.calc.Calculate(w, d)

	orderID, err := m.repo.Insert(ctx, customerID, shipperID, w, d, cost)
	if err != nil {
		m.logger.ErrorContext(ctx, "add failed: insert", "error", err)
		return false
	}

	m.logger.InfoContext(ctx, "order added",
		"order_id", orderID, "customer_id", customerID, "shipper_id", shipperID, "cost", cost)

	if err = m.Refresh(ctx); err != nil {
		// The insert is durable; only the projection is stale. The next
		// successful refresh catches up.
		m.logger.ErrorContext(ctx, "cache reload after add failed", "error", err)
	}
	return true
}

// UpdateOrder validates the ranges, requires the target to be present in the
// current cache, recomputes the cost, updates the row and reloads the cache.
func (m *Manager) UpdateOrder(ctx context.Context, orderID int64, weight float64, distance int) bool {
	w, err := kernel.NewWeight(weight)
	if err != nil {
		m.logger.WarnContext(ctx, "update rejected: invalid weight", "order_id", orderID, "error", err)
		return false
	}

	d, err := kernel.NewDistance(distance)
	if err != nil {
		m.logger.WarnContext(ctx, "update rejected: invalid distance", "order_id", orderID, "error", err)
		return false
	}

	// Existence is checked against the cache first to avoid a wasted store
	// round trip for targets that are already known to be absent.
	if _, found := m.FindOrder(orderID); !found {
		m.logger.WarnContext(ctx, "update rejected: order not found", "order_id", orderID)
		return false
	}

	cost := m.calc.Calculate(w, d)

	updated, err := m.repo.Update(ctx, orderID, w, d, cost)
	if err != nil {
		m.logger.ErrorContext(ctx, "update failed", "order_id", orderID, "error", err)
		return false
	}

	if updated {
		m.logger.InfoContext(ctx, "order updated", "order_id", orderID, "cost", cost)
		if err = m.Refresh(ctx); err != nil {
			m.logger.ErrorContext(ctx, "cache reload after update failed", "error", err)
		}
	}
	return updated
}

// DeleteOrder removes the order and reloads the cache when a row was
// actually removed. Deleting an absent order returns false.
func (m *Manager) DeleteOrder(ctx context.Context, orderID int64) bool {
	deleted, err := m.repo.Delete(ctx, orderID)
	if err != nil {
		m.logger.ErrorContext(ctx, "delete failed", "order_id", orderID, "error", err)
		return false
	}

	if deleted {
		m.logger.InfoContext(ctx, "order deleted", "order_id", orderID)
		if err = m.Refresh(ctx); err != nil {
			m.logger.ErrorContext(ctx, "cache reload after delete failed", "error", err)
		}
	}
	return deleted
}

// FindOrder scans the in-memory cache for the order. No store access.
func (m *Manager) FindOrder(orderID int64) (*order.Order, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, o := range m.cache {
		if o.ID() == orderID {
			return o, true
		}
	}
	return nil, false
}

// AllOrders returns a snapshot of the in-memory cache. The snapshot does not
// track later mutations.
func (m *Manager) AllOrders() []*order.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make([]*order.Order, len(m.cache))
	copy(snapshot, m.cache)
	return snapshot
}

// Refresh rebuilds the cache wholesale from the store. On failure the
// previous cache is kept as-is.
func (m *Manager) Refresh(ctx context.Context) error {
	loaded, err := m.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.cache = loaded
	m.mu.Unlock()
	return nil
}

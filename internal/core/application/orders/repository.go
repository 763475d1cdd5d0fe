// Package orders implements the order management core: the SQL repository
// for shipping order rows and the Manager that orchestrates validation,
// party resolution, cost derivation and the in-memory cache.
package orders

import (
	"context"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

const (
	insertOrderSQL = `
		INSERT INTO shipping_orders (customer_id, shipper_id, weight_in_pounds, distance_in_miles, shipping_cost)
		VALUES (?, ?, ?, ?, ?)
		RETURNING order_id`

	updateOrderSQL = `
		UPDATE shipping_orders
		SET weight_in_pounds = ?, distance_in_miles = ?, shipping_cost = ?
		WHERE order_id = ?`

	deleteOrderSQL = `DELETE FROM shipping_orders WHERE order_id = ?`

	loadAllOrdersSQL = `
		SELECT
			o.order_id,
			o.customer_id,
			o.shipper_id,
			o.weight_in_pounds,
			o.distance_in_miles,
			c.name AS customer_name,
			s.name AS shipper_name
		FROM shipping_orders o
		JOIN customers c ON o.customer_id = c.customer_id
		JOIN shippers s ON o.shipper_id = s.shipper_id
		ORDER BY o.order_id`
)

// SQLOrderRepository persists shipping orders through the raw Store port.
type SQLOrderRepository struct {
	store ports.Store
	calc  services.ShippingCostCalculator
}

// NewSQLOrderRepository creates a repository over the given store.
func NewSQLOrderRepository(store ports.Store) *SQLOrderRepository {
	return &SQLOrderRepository{
		store: store,
		calc:  services.NewShippingCostCalculator(),
	}
}

// Insert writes one order row and returns the store-assigned identifier.
func (r *SQLOrderRepository) Insert(
	ctx context.Context,
	customerID int64,
	shipperID int64,
	weight kernel.Weight,
	distance kernel.Distance,
	cost float64,
) (int64, error) {
	// Constructing the aggregate enforces referential and range invariants
	// before the row is written.
	if _, err := order.NewOrder(customerID, shipperID, weight, distance, cost); err != nil {
		return 0, err
	}

	id, err := r.store.ExecuteReturningID(ctx, insertOrderSQL,
		customerID, shipperID, weight.Pounds(), distance.Miles(), cost)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	return id, nil
}

// Update overwrites weight, distance and cost of an existing row.
// A missing row is a negative result, not an error.
func (r *SQLOrderRepository) Update(
	ctx context.Context,
	orderID int64,
	weight kernel.Weight,
	distance kernel.Distance,
	cost float64,
) (bool, error) {
	affected, err := r.store.Execute(ctx, updateOrderSQL,
		weight.Pounds(), distance.Miles(), cost, orderID)
	if err != nil {
		return false, fmt.Errorf("update order %d: %w", orderID, err)
	}

	return affected > 0, nil
}

// Delete removes the row. A missing row is a negative result, not an error.
func (r *SQLOrderRepository) Delete(ctx context.Context, orderID int64) (bool, error) {
	affected, err := r.store.Execute(ctx, deleteOrderSQL, orderID)
	if err != nil {
		return false, fmt.Errorf("delete order %d: %w", orderID, err)
	}

	return affected > 0, nil
}

// LoadAll reconstructs every order with its denormalized display names.
// The cost is recomputed from weight and distance during the scan rather
// than read back, so rows written by a superseded formula version still
// satisfy the cost invariant.
func (r *SQLOrderRepository) LoadAll(ctx context.Context) ([]*order.Order, error) {
	rows, err := r.store.Query(ctx, loadAllOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	defer rows.Close()

	loaded := make([]*order.Order, 0)
	for rows.Next() {
		var (
			id, customerID, shipperID int64
			pounds                    float64
			miles                     int
			customerName, shipperName string
		)
		if err = rows.Scan(&id, &customerID, &shipperID, &pounds, &miles, &customerName, &shipperName); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		weight, weightErr := kernel.NewWeight(pounds)
		if weightErr != nil {
			return nil, fmt.Errorf("order %d has invalid stored weight: %w", id, weightErr)
		}

		distance, distanceErr := kernel.NewDistance(miles)
		if distanceErr != nil {
			return nil, fmt.Errorf("order %d has invalid stored distance: %w", id, distanceErr)
		}

		cost := r.calc.Calculate(weight, distance)

		o, restoreErr := order.RestoreOrder(id, customerID, shipperID, weight, distance, cost, customerName, shipperName)
		if restoreErr != nil {
			return nil, restoreErr
		}
		loaded = append(loaded, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loaded, nil
}

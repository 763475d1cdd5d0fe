package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for shipping orders.
// Not-found targets are negative results, not errors: Update and Delete
// report them as false with a nil error.
type OrderRepository interface {
	// Insert writes one order row and returns the store-assigned identifier.
	Insert(ctx context.Context, customerID int64, shipperID int64,
		weight kernel.Weight, distance kernel.Distance, cost float64) (int64, error)

	// Update overwrites weight, distance and cost of an existing row.
	// Returns false when no row matched the identifier.
	Update(ctx context.Context, orderID int64,
		weight kernel.Weight, distance kernel.Distance, cost float64) (bool, error)

	// Delete removes the row. Returns false when no row matched.
	Delete(ctx context.Context, orderID int64) (bool, error)

	// LoadAll reconstructs every order via the join against customers and
	// shippers, with display names populated and the cost freshly recomputed
	// from weight and distance.
	LoadAll(ctx context.Context) ([]*order.Order, error)
}

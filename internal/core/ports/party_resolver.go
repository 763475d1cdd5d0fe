package ports

import (
	"context"

	"shipping/internal/core/domain/model/customer"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipper"
)

// PartyResolver maps a display name to a persistent customer or shipper
// identifier, inserting a new record with empty contact fields when the name
// has not been seen before. Resolution guarantees referential integrity for
// subsequent order inserts.
//
// Lookup-then-insert is not atomic: concurrent writers sharing the store can
// race and produce duplicate rows for the same name. That limitation is
// accepted rather than masked with locking.
type PartyResolver interface {
	// CustomerID returns the identifier for the customer with the given
	// name, creating the customer when absent.
	CustomerID(ctx context.Context, name kernel.PartyName) (int64, error)

	// ShipperID returns the identifier for the shipper with the given name,
	// creating the shipper when absent.
	ShipperID(ctx context.Context, name kernel.PartyName) (int64, error)
}

// PartyDirectory exposes the read side of the resolved parties for display.
type PartyDirectory interface {
	// Customers lists all customers ordered by name.
	Customers(ctx context.Context) ([]*customer.Customer, error)

	// Shippers lists all shippers ordered by name.
	Shippers(ctx context.Context) ([]*shipper.Shipper, error)
}

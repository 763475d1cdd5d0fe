// Package order defines the shipping order aggregate. An order links one
// customer and one shipper and carries validated weight and distance plus a
// derived shipping cost.
package order

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

// Order represents one shipping order.
//
// Invariants:
//   - customer and shipper identifiers reference existing rows; the resolver
//     guarantees this before any insert
//   - weight and distance are validated value objects
//   - cost always equals the calculator's output for the current weight and
//     distance; no path leaves a stale cost behind
//
// CustomerName and ShipperName are denormalized display fields populated only
// by the join-based load path; they are empty on the raw-fields path and are
// never authoritative.
type Order struct {
	id         int64
	customerID int64
	shipperID  int64
	weight     kernel.Weight
	distance   kernel.Distance
	cost       float64

	customerName string
	shipperName  string

	isConstructed bool
}

// NewOrder creates a not-yet-persisted Order from raw fields. The identifier
// is assigned by the store on insert; display names stay empty.
func NewOrder(customerID int64, shipperID int64, weight kernel.Weight, distance kernel.Distance, cost float64) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setShipperID(shipperID),
		o.setWeight(weight),
		o.setDistance(distance),
		o.setCost(cost),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs a persisted Order from a joined store row,
// including the denormalized customer and shipper display names.
func RestoreOrder(
	id int64,
	customerID int64,
	shipperID int64,
	weight kernel.Weight,
	distance kernel.Distance,
	cost float64,
	customerName string,
	shipperName string,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("order id must be positive")
	}
	o.id = id

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setShipperID(shipperID),
		o.setWeight(weight),
		o.setDistance(distance),
		o.setCost(cost),
	); err != nil {
		return nil, err
	}

	o.customerName = customerName
	o.shipperName = shipperName
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the store-assigned order identifier, 0 when not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the referenced customer identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// ShipperID returns the referenced shipper identifier.
func (o *Order) ShipperID() int64 {
	return o.shipperID
}

// Weight returns the package weight.
func (o *Order) Weight() kernel.Weight {
	return o.weight
}

// Distance returns the shipping distance.
func (o *Order) Distance() kernel.Distance {
	return o.distance
}

// Cost returns the derived shipping cost.
func (o *Order) Cost() float64 {
	return o.cost
}

// CustomerName returns the denormalized customer display name.
// Empty unless the order was restored from the join-based load path.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ShipperName returns the denormalized shipper display name.
// Empty unless the order was restored from the join-based load path.
func (o *Order) ShipperName() string {
	return o.shipperName
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidError("customer id must be positive")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setShipperID(shipperID int64) error {
	if shipperID <= 0 {
		return errs.NewValueIsInvalidError("shipper id must be positive")
	}
	o.shipperID = shipperID
	return nil
}

func (o *Order) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	o.weight = weight
	return nil
}

func (o *Order) setDistance(distance kernel.Distance) error {
	if err := distance.Validate(); err != nil {
		return err
	}
	o.distance = distance
	return nil
}

func (o *Order) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidError("cost must not be negative")
	}
	o.cost = cost
	return nil
}

// Package customer defines the Customer entity. Customers are created on
// demand when an unseen name is resolved and are never deleted by this
// system; identity is a store-assigned integer.
package customer

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through one of the package constructors.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructors")

// Customer represents a party that places shipping orders.
//
// Invariants:
//   - the display name satisfies at least the lenient naming policy
//   - the identifier is 0 until the store assigns one, positive afterwards
//   - email and phone may be empty
type Customer struct {
	id    int64
	name  kernel.PartyName
	email string
	phone string

	isConstructed bool
}

// NewCustomer creates a not-yet-persisted Customer with empty contact fields.
// The identifier is assigned by the store on insert.
func NewCustomer(name kernel.PartyName) (*Customer, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a persisted Customer from store fields.
func RestoreCustomer(id int64, name kernel.PartyName, email string, phone string) (*Customer, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("customer id must be positive")
	}
	if err := name.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// ID returns the store-assigned identifier, 0 when not yet persisted.
func (c *Customer) ID() int64 {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() kernel.PartyName {
	return c.name
}

// Email returns the contact email, possibly empty.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the contact phone, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

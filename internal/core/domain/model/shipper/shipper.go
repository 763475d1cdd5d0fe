// Package shipper defines the Shipper entity: the carrier side of a shipping
// order. Lifecycle and naming rules mirror the customer entity.
package shipper

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrShipperIsNotConstructed is returned when a Shipper instance was not
// created through one of the package constructors.
var ErrShipperIsNotConstructed = errors.New("Shipper must be created via NewShipper or RestoreShipper constructors")

// Shipper represents a carrier that fulfills shipping orders.
type Shipper struct {
	id    int64
	name  kernel.PartyName
	phone string

	isConstructed bool
}

// NewShipper creates a not-yet-persisted Shipper with an empty phone.
// The identifier is assigned by the store on insert.
func NewShipper(name kernel.PartyName) (*Shipper, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}

	return &Shipper{
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreShipper reconstructs a persisted Shipper from store fields.
func RestoreShipper(id int64, name kernel.PartyName, phone string) (*Shipper, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("shipper id must be positive")
	}
	if err := name.Validate(); err != nil {
		return nil, err
	}

	return &Shipper{
		id:            id,
		name:          name,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// Validate ensures the Shipper was created through a constructor.
func (s *Shipper) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipperIsNotConstructed
	}

	return nil
}

// ID returns the store-assigned identifier, 0 when not yet persisted.
func (s *Shipper) ID() int64 {
	return s.id
}

// Name returns the shipper's display name.
func (s *Shipper) Name() kernel.PartyName {
	return s.name
}

// Phone returns the contact phone, possibly empty.
func (s *Shipper) Phone() string {
	return s.phone
}

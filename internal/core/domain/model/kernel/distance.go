package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// MaxDistanceMiles is the longest supported shipping distance.
const MaxDistanceMiles = 3000

// ErrDistanceIsNotConstructed is returned when a zero-value Distance is used.
var ErrDistanceIsNotConstructed = errs.NewValueIsRequiredError(
	"distance must be created via NewDistance constructor")

// Distance represents a shipping distance in whole miles.
// Valid distances are strictly positive and at most MaxDistanceMiles.
type Distance struct {
	miles int
	guard guard.ConstructorGuard
}

// NewDistance creates a Distance from a value in miles.
// Returns an out-of-range error when miles is not in (0, MaxDistanceMiles].
func NewDistance(miles int) (Distance, error) {
	if miles <= 0 || miles > MaxDistanceMiles {
		return Distance{}, errs.NewValueIsOutOfRangeError("distance", miles, 0, MaxDistanceMiles)
	}

	return Distance{
		miles: miles,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Distance was created via NewDistance.
func (d Distance) Validate() error {
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// Miles returns the distance value in miles.
func (d Distance) Miles() int {
	return d.miles
}

func (d Distance) String() string {
	return fmt.Sprintf("%d mi", d.miles)
}

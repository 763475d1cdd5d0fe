// Package kernel contains the shared value objects of the shipping domain:
// validated weights, distances and party names. All types are immutable and
// must be created through their constructors; zero values fail validation.
package kernel

import (
	"fmt"
	"math"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// MaxWeightPounds is the heaviest shippable package. Heavier freight is
// handled outside this system.
const MaxWeightPounds = 150.0

// ErrWeightIsNotConstructed is returned when a zero-value Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight represents a package weight in pounds.
// Valid weights are strictly positive and at most MaxWeightPounds.
type Weight struct {
	pounds float64
	guard  guard.ConstructorGuard
}

// NewWeight creates a Weight from a value in pounds.
// Returns an out-of-range error when pounds is not a finite value in
// (0, MaxWeightPounds]. NaN fails both range comparisons, so non-finite
// inputs are rejected explicitly.
func NewWeight(pounds float64) (Weight, error) {
	if math.IsNaN(pounds) || math.IsInf(pounds, 0) || pounds <= 0 || pounds > MaxWeightPounds {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", pounds, 0, MaxWeightPounds)
	}

	return Weight{
		pounds: pounds,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Weight was created via NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Pounds returns the weight value in pounds.
func (w Weight) Pounds() float64 {
	return w.pounds
}

func (w Weight) String() string {
	return fmt.Sprintf("%g lb", w.pounds)
}

package services

import (
	"shipping/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ratePerPoundMile is the shipping rate in dollars per pound-mile.
var ratePerPoundMile = decimal.RequireFromString("0.0015")

// ShippingCostCalculator derives the shipping cost of an order from its
// weight and distance:
//
//	cost = round2(weight * distance * 0.0015)
//
// where round2 rounds half away from zero to two decimal places. The
// calculator holds no state, so the same inputs always produce the same
// cost; callers must pre-validate ranges via the kernel value objects.
type ShippingCostCalculator struct{}

// NewShippingCostCalculator creates a ShippingCostCalculator.
func NewShippingCostCalculator() ShippingCostCalculator {
	return ShippingCostCalculator{}
}

// Calculate returns the shipping cost in dollars, rounded to cents.
func (ShippingCostCalculator) Calculate(weight kernel.Weight, distance kernel.Distance) float64 {
	cost := decimal.NewFromFloat(weight.Pounds()).
		Mul(decimal.NewFromInt(int64(distance.Miles()))).
		Mul(ratePerPoundMile)

	return cost.Round(2).InexactFloat64()
}

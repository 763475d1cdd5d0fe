package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingCostCalculator_Calculate(t *testing.T) {
	calc := services.NewShippingCostCalculator()

	mustWeight := func(pounds float64) kernel.Weight {
		w, err := kernel.NewWeight(pounds)
		require.NoError(t, err)
		return w
	}
	mustDistance := func(miles int) kernel.Distance {
		d, err := kernel.NewDistance(miles)
		require.NoError(t, err)
		return d
	}

	t.Run("computes rate per pound-mile rounded to cents", func(t *testing.T) {
		testCases := []struct {
			name     string
			pounds   float64
			miles    int
			expected float64
		}{
			{"small package short haul", 2.0, 100, 0.30},
			{"half-cent rounds up", 10.5, 500, 7.88},
			{"tiny order rounds to zero", 0.1, 1, 0.00},
			{"maximum order", 150.0, 3000, 675.00},
			{"one pound one mile", 1.0, 1, 0.00},
			{"fractional weight", 33.3, 1200, 59.94},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				cost := calc.Calculate(mustWeight(tc.pounds), mustDistance(tc.miles))

				assert.InDelta(t, tc.expected, cost, 1e-9)
			})
		}
	})

	t.Run("is deterministic across calls", func(t *testing.T) {
		w := mustWeight(77.7)
		d := mustDistance(1234)

		first := calc.Calculate(w, d)
		for range 100 {
			assert.InDelta(t, first, calc.Calculate(w, d), 0)
		}
	})
}

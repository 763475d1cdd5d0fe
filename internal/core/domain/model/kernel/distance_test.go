package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistance(t *testing.T) {
	t.Run("should create distance inside valid range", func(t *testing.T) {
		d, err := kernel.NewDistance(500)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, 500, d.Miles())
	})

	t.Run("should accept boundary value", func(t *testing.T) {
		d, err := kernel.NewDistance(kernel.MaxDistanceMiles)

		require.NoError(t, err)
		assert.Equal(t, 3000, d.Miles())
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		for _, miles := range []int{0, -10, 3001, 100000} {
			_, err := kernel.NewDistance(miles)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}

func TestDistance_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var d kernel.Distance

		err := d.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "NewDistance")
	})
}

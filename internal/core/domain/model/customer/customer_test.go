package customer_test

import (
	"testing"

	"shipping/internal/core/domain/model/customer"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create unsaved customer with empty contacts", func(t *testing.T) {
		name, err := kernel.NewPartyName("Alice")
		require.NoError(t, err)

		c, err := customer.NewCustomer(name)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, int64(0), c.ID())
		assert.Equal(t, "Alice", c.Name().String())
		assert.Empty(t, c.Email())
		assert.Empty(t, c.Phone())
	})

	t.Run("should fail with zero-value name", func(t *testing.T) {
		var name kernel.PartyName

		c, err := customer.NewCustomer(name)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestRestoreCustomer(t *testing.T) {
	name, err := kernel.NewPartyName("Alice")
	require.NoError(t, err)

	t.Run("should restore persisted customer", func(t *testing.T) {
		c, err := customer.RestoreCustomer(3, name, "alice@example.com", "555-0100")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, int64(3), c.ID())
		assert.Equal(t, "alice@example.com", c.Email())
		assert.Equal(t, "555-0100", c.Phone())
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		c, err := customer.RestoreCustomer(0, name, "", "")

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var c customer.Customer

	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
}

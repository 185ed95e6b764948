package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(ownerID, 2, order.Large)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OwnerID().IsEqual(ownerID))
		assert.Equal(t, 2, cmd.Quantity())
		assert.Equal(t, order.Large, cmd.Size())
	})

	t.Run("should fail with invalid owner ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewPlaceOrderCommand(invalidID, 2, order.Large)

		require.Error(t, err)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(ownerID, 0, order.Large)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(ownerID, -3, order.Large)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
	})
}

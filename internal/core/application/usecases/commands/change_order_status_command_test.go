package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Delivered)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.Equal(t, order.Delivered, cmd.Status())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewChangeOrderStatusCommand(invalidID, order.Delivered)

		require.Error(t, err)
	})

	t.Run("should fail with unrecognized status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(orderID, order.UnknownStatus)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.ChangeOrderStatusCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrChangeOrderStatusCommandIsNotConstructed, err)
	})
}

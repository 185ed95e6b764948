package order_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("should parse recognized status names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"PENDING", order.Pending},
			{"IN-TRANSIT", order.InTransit},
			{"DELIVERED", order.Delivered},
		}

		for _, tc := range testCases {
			status, err := order.ParseStatus(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should normalize case and whitespace", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"pending", order.Pending},
			{"in-transit", order.InTransit},
			{"In-Transit", order.InTransit},
			{"delivered", order.Delivered},
			{"  DELIVERED  ", order.Delivered},
		}

		for _, tc := range testCases {
			status, err := order.ParseStatus(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unrecognized status names", func(t *testing.T) {
		for _, input := range []string{"", "SHIPPED", "in transit", "done"} {
			status, err := order.ParseStatus(input)

			require.Error(t, err, "expected error for input: %q", input)
			assert.Equal(t, order.UnknownStatus, status)
			assert.Contains(t, err.Error(), "PENDING, IN-TRANSIT, DELIVERED")
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept recognized statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.InTransit, order.Delivered} {
			assert.NoError(t, status.Validate())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.UnknownStatus.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		err := order.Status(42).Validate()
		require.Error(t, err)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "PENDING", order.Pending.String())
		assert.Equal(t, "IN-TRANSIT", order.InTransit.String())
		assert.Equal(t, "DELIVERED", order.Delivered.String())
	})

	t.Run("should render invalid values as UNKNOWN", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.UnknownStatus.String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})

	t.Run("should round trip through ParseStatus", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.InTransit, order.Delivered} {
			parsed, err := order.ParseStatus(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}

func TestValidStatusNames(t *testing.T) {
	assert.Equal(t, "PENDING, IN-TRANSIT, DELIVERED", order.ValidStatusNames())
}

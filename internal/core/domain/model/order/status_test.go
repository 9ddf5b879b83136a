package order_test

import (
	"fmt"
	"testing"

	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have stable identifiers", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.InTransit))
		assert.Equal(t, 3, int(order.Delivered))
		assert.Equal(t, 4, int(order.Canceled))
	})

	t.Run("registry enumerates the four statuses in id order", func(t *testing.T) {
		assert.Equal(t, []order.Status{
			order.Pending,
			order.InTransit,
			order.Delivered,
			order.Canceled,
		}, order.AllStatuses())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate registry statuses", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "Pending"},
		{order.InTransit, "In transit"},
		{order.Delivered, "Delivered"},
		{order.Canceled, "Canceled"},
		{order.Unknown, "Unknown"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("value %d", int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromName(t *testing.T) {
	t.Run("should resolve every registry name", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			resolved, err := order.StatusFromName(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, resolved)
		}
	})

	t.Run("should fail with ErrUnknownStatus for unknown names", func(t *testing.T) {
		for _, name := range []string{"", "pending", "Shipped", "IN TRANSIT", "Intransit"} {
			_, err := order.StatusFromName(name)
			require.ErrorIs(t, err, order.ErrUnknownStatus, "name: %q", name)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Canceled.IsTerminal())
}

func TestStatus_EnsureMutable(t *testing.T) {
	t.Run("non-terminal statuses are mutable", func(t *testing.T) {
		require.NoError(t, order.Pending.EnsureMutable())
		require.NoError(t, order.InTransit.EnsureMutable())
	})

	t.Run("delivered orders cannot change", func(t *testing.T) {
		require.ErrorIs(t, order.Delivered.EnsureMutable(), order.ErrAlreadyDelivered)
	})

	t.Run("canceled orders cannot change", func(t *testing.T) {
		require.ErrorIs(t, order.Canceled.EnsureMutable(), order.ErrAlreadyCanceled)
	})
}

func TestStatus_EnsureCancelable(t *testing.T) {
	t.Run("pending orders can be canceled", func(t *testing.T) {
		require.NoError(t, order.Pending.EnsureCancelable())
	})

	t.Run("in transit orders cannot be canceled", func(t *testing.T) {
		require.ErrorIs(t, order.InTransit.EnsureCancelable(), order.ErrNotCancelable)
	})

	t.Run("terminal statuses keep their specific violation", func(t *testing.T) {
		require.ErrorIs(t, order.Delivered.EnsureCancelable(), order.ErrAlreadyDelivered)
		require.ErrorIs(t, order.Canceled.EnsureCancelable(), order.ErrAlreadyCanceled)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("pending can move to in transit", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.InTransit)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, next)
	})

	t.Run("in transit can move to delivered", func(t *testing.T) {
		next, err := order.InTransit.TransitionTo(order.Delivered)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("pending can move to canceled", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Canceled)

		require.NoError(t, err)
		assert.Equal(t, order.Canceled, next)
	})

	t.Run("in transit cannot move to canceled", func(t *testing.T) {
		_, err := order.InTransit.TransitionTo(order.Canceled)

		require.ErrorIs(t, err, order.ErrNotCancelable)
	})

	t.Run("terminal statuses reject any transition", func(t *testing.T) {
		for _, target := range order.AllStatuses() {
			_, err := order.Delivered.TransitionTo(target)
			require.ErrorIs(t, err, order.ErrAlreadyDelivered, "target: %s", target)

			_, err = order.Canceled.TransitionTo(target)
			require.ErrorIs(t, err, order.ErrAlreadyCanceled, "target: %s", target)
		}
	})

	t.Run("rejects invalid targets", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

package guard_test

import (
	"errors"
	"testing"

	"packtrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type trackedParcel struct {
		code  string
		guard guard.ConstructorGuard
	}

	errParcelNotConstructed := errors.New("trackedParcel must be created via newTrackedParcel")

	newTrackedParcel := func(code string) (trackedParcel, error) {
		if code == "" {
			return trackedParcel{}, errors.New("code is required")
		}
		return trackedParcel{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		parcel, err := newTrackedParcel("PT-001")

		require.NoError(t, err)
		require.NoError(t, parcel.guard.Validate(errParcelNotConstructed))
		assert.Equal(t, "PT-001", parcel.code)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var parcel trackedParcel

		err := parcel.guard.Validate(errParcelNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errParcelNotConstructed, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

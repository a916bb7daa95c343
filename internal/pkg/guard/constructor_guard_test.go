package guard_test

import (
	"errors"
	"testing"

	"fieldservice/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("Route must be created via NewRoute constructor")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardInCommand shows the pattern used by command structs: the
// zero value fails validation, the constructor result passes it.
func TestConstructorGuardInCommand(t *testing.T) {
	errNotConstructed := errors.New("DeleteRouteCommand must be created via NewDeleteRouteCommand constructor")

	type deleteRouteCommand struct {
		index int
		guard guard.ConstructorGuard
	}

	newCommand := func(index int) (deleteRouteCommand, error) {
		if index < 0 {
			return deleteRouteCommand{}, errors.New("index cannot be negative")
		}
		return deleteRouteCommand{index: index, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		cmd, err := newCommand(2)

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
		assert.Equal(t, 2, cmd.index)
	})

	t.Run("zero value", func(t *testing.T) {
		var cmd deleteRouteCommand

		assert.Equal(t, errNotConstructed, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("constructor rejects invalid input", func(t *testing.T) {
		_, err := newCommand(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 200 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}

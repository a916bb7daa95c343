package kernel_test

import (
	"testing"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	require.NoError(t, id1.Validate())
	assert.False(t, id1.IsEqual(id2))
	assert.False(t, id1.IsZero())
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse valid string", func(t *testing.T) {
		raw := "550e8400-e29b-41d4-a716-446655440000"

		id, err := kernel.UUIDFromString(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("should reject malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	original := kernel.NewUUID()
	raw := original.Bytes()

	restored, err := kernel.UUIDFromBytes(raw[:])
	require.NoError(t, err)
	assert.True(t, restored.IsEqual(original))

	_, err = kernel.UUIDFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.True(t, zero.IsZero())
	assert.Equal(t, errs.KindValidation, errs.KindOf(zero.Validate()))
}

func TestUUID_LockKey(t *testing.T) {
	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)

	assert.Equal(t, id.LockKey(), id.LockKey())
	assert.NotEqual(t, id.LockKey(), kernel.NewUUID().LockKey())
}

func TestUUIDPointers(t *testing.T) {
	id := kernel.NewUUID()

	raw := kernel.PtrBytes(id.Ptr())
	require.NotNil(t, raw)
	restored, err := kernel.UUIDFromPtr(raw)
	require.NoError(t, err)
	assert.True(t, restored.IsEqual(id))

	assert.Nil(t, kernel.PtrBytes(nil))
	none, err := kernel.UUIDFromPtr(nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

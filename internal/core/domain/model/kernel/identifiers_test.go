package kernel_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingID(t *testing.T) {
	t.Run("should normalize casing and whitespace", func(t *testing.T) {
		id, err := kernel.NewTrackingID("  x1 ")

		require.NoError(t, err)
		assert.Equal(t, "X1", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("variants collapse to the same identity", func(t *testing.T) {
		a, err := kernel.NewTrackingID("X1")
		require.NoError(t, err)
		b, err := kernel.NewTrackingID("x1 ")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should fail on empty value", func(t *testing.T) {
		_, err := kernel.NewTrackingID("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var id kernel.TrackingID

		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestNewBinID(t *testing.T) {
	t.Run("should normalize casing and whitespace", func(t *testing.T) {
		id, err := kernel.NewBinID(" b-7\t")

		require.NoError(t, err)
		assert.Equal(t, "B-7", id.String())
	})

	t.Run("should fail on empty value", func(t *testing.T) {
		_, err := kernel.NewBinID("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var id kernel.BinID

		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestUUID(t *testing.T) {
	t.Run("new UUID is valid and unique", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("round-trips through string", func(t *testing.T) {
		a := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(a.String())

		require.NoError(t, err)
		assert.True(t, a.IsEqual(parsed))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID

		require.Error(t, id.Validate())
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})
}

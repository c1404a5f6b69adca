package services_test

import (
	"testing"

	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func mustBin(t *testing.T, capacity int) *bin.Bin {
	t.Helper()
	id, err := kernel.NewBinID("B-1")
	require.NoError(t, err)
	warehouseID := kernel.NewUUID()
	b, err := bin.NewBin(id, &warehouseID, "Aisle 1", capacity)
	require.NoError(t, err)
	return b
}

func TestCapacityAllocator_EnsureAdmits(t *testing.T) {
	allocator := services.NewCapacityAllocator()

	t.Run("admits into a bin with headroom", func(t *testing.T) {
		require.NoError(t, allocator.EnsureAdmits(mustBin(t, 3), 2, 1))
	})

	t.Run("rejects when the addition overflows", func(t *testing.T) {
		err := allocator.EnsureAdmits(mustBin(t, 3), 2, 2)

		require.ErrorIs(t, err, bin.ErrCapacityExceeded)

		var capErr *bin.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		require.Equal(t, 3, capErr.Capacity)
		require.Equal(t, 2, capErr.Occupancy)
	})

	t.Run("rejects a full single-slot bin", func(t *testing.T) {
		require.ErrorIs(t, allocator.EnsureAdmits(mustBin(t, 1), 1, 1), bin.ErrCapacityExceeded)
	})

	t.Run("full occupied bin reports the capacity breach", func(t *testing.T) {
		b := mustBin(t, 3)
		b.RecordOccupancy(3)

		err := allocator.EnsureAdmits(b, 3, 1)

		require.ErrorIs(t, err, bin.ErrCapacityExceeded)
		require.NotErrorIs(t, err, bin.ErrBinUnavailable)
	})

	t.Run("single-slot bin restored as occupied reports the capacity breach", func(t *testing.T) {
		id, err := kernel.NewBinID("B-1")
		require.NoError(t, err)
		b, err := bin.RestoreBin(id, nil, "Aisle 1", 1, bin.Occupied)
		require.NoError(t, err)

		require.ErrorIs(t, allocator.EnsureAdmits(b, 1, 1), bin.ErrCapacityExceeded)
	})

	t.Run("rejects a maintenance bin", func(t *testing.T) {
		id, err := kernel.NewBinID("B-1")
		require.NoError(t, err)
		b, err := bin.RestoreBin(id, nil, "Aisle 1", 3, bin.Maintenance)
		require.NoError(t, err)

		require.ErrorIs(t, allocator.EnsureAdmits(b, 0, 1), bin.ErrBinUnavailable)
	})

	t.Run("rejects an unconstructed bin", func(t *testing.T) {
		var b bin.Bin

		require.ErrorIs(t, allocator.EnsureAdmits(&b, 0, 1), bin.ErrBinIsNotConstructed)
	})
}

package queries_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestQueryConstruction(t *testing.T) {
	trackingID, err := kernel.NewTrackingID("T1")
	require.NoError(t, err)
	binID, err := kernel.NewBinID("B-1")
	require.NoError(t, err)
	warehouseID := kernel.NewUUID()

	t.Run("get shipment", func(t *testing.T) {
		query, err := queries.NewGetShipmentQuery(trackingID, &warehouseID)
		require.NoError(t, err)
		require.NoError(t, query.Validate())

		require.ErrorIs(t,
			queries.GetShipmentQuery{}.Validate(),
			queries.ErrGetShipmentQueryIsNotConstructed,
		)

		var invalid kernel.TrackingID
		_, err = queries.NewGetShipmentQuery(invalid, nil)
		require.Error(t, err)
	})

	t.Run("get bin packages", func(t *testing.T) {
		query, err := queries.NewGetBinPackagesQuery(binID, nil)
		require.NoError(t, err)
		require.NoError(t, query.Validate())

		require.ErrorIs(t,
			queries.GetBinPackagesQuery{}.Validate(),
			queries.ErrGetBinPackagesQueryIsNotConstructed,
		)
	})

	t.Run("get audit logs defaults the limit", func(t *testing.T) {
		query, err := queries.NewGetAuditLogsQuery(nil, nil, 0)
		require.NoError(t, err)
		require.Equal(t, 100, query.Limit())

		query, err = queries.NewGetAuditLogsQuery(&trackingID, &warehouseID, 25)
		require.NoError(t, err)
		require.Equal(t, 25, query.Limit())
	})

	t.Run("get warehouse operators requires a warehouse", func(t *testing.T) {
		_, err := queries.NewGetWarehouseOperatorsQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("get stale putaway requires a cutoff", func(t *testing.T) {
		_, err := queries.NewGetStalePutawayQuery(time.Time{})
		require.Error(t, err)

		query, err := queries.NewGetStalePutawayQuery(time.Now().Add(-24 * time.Hour))
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})
}

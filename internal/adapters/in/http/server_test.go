package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestErrorResponse_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no warehouse selected", commands.ErrNoWarehouseSelected, http.StatusBadRequest},
		{"value required", errs.NewValueIsRequiredError("trackingID"), http.StatusBadRequest},
		{"value invalid", errs.NewValueIsInvalidError("role"), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("shipment", "T1"), http.StatusNotFound},
		{"cross warehouse", errs.NewCrossWarehouseError("bin", "B-1", "w2"), http.StatusForbidden},
		{"bin unavailable", bin.NewBinUnavailableError("B-1", bin.Maintenance), http.StatusConflict},
		{"capacity exceeded", bin.NewCapacityExceededError("B-1", 1, 1), http.StatusConflict},
		{"invalid transition", shipment.NewInvalidStateTransitionError(shipment.Dispatched, shipment.Dispatched), http.StatusConflict},
		{"mismatch", shipment.NewMismatchError("T1", "T2"), http.StatusConflict},
		{"no operators", services.ErrNoOperators, http.StatusConflict},
		{"unclassified", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t, nil)

			require.NoError(t, errorResponse(ctx, tt.err))
			assert.Equal(t, tt.want, rec.Code)

			var payload Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.Equal(t, tt.want, payload.Code)
			assert.NotEmpty(t, payload.Message)
		})
	}
}

func TestWarehouseScope(t *testing.T) {
	server := &Server{}
	warehouseID := kernel.NewUUID()

	t.Run("valid header", func(t *testing.T) {
		ctx, _ := newTestContext(t, map[string]string{HeaderWarehouseID: warehouseID.String()})

		scope, err := server.warehouseScope(ctx)
		require.NoError(t, err)
		assert.True(t, warehouseID.IsEqual(scope))
	})

	t.Run("missing header", func(t *testing.T) {
		ctx, _ := newTestContext(t, nil)

		_, err := server.warehouseScope(ctx)
		require.ErrorIs(t, err, commands.ErrNoWarehouseSelected)
		assert.Nil(t, server.optionalWarehouseScope(ctx))
	})

	t.Run("malformed header", func(t *testing.T) {
		ctx, _ := newTestContext(t, map[string]string{HeaderWarehouseID: "not-a-uuid"})

		_, err := server.warehouseScope(ctx)
		require.ErrorIs(t, err, commands.ErrNoWarehouseSelected)
	})
}

func TestActor(t *testing.T) {
	server := &Server{}
	userID := kernel.NewUUID()

	t.Run("valid header", func(t *testing.T) {
		ctx, _ := newTestContext(t, map[string]string{HeaderUserID: userID.String()})

		actor := server.actor(ctx)
		require.NotNil(t, actor)
		assert.True(t, userID.IsEqual(*actor))
	})

	t.Run("absent header means anonymous", func(t *testing.T) {
		ctx, _ := newTestContext(t, nil)
		assert.Nil(t, server.actor(ctx))
	})
}

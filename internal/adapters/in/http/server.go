// Package http exposes the warehouse engine over HTTP using echo.
// Authentication happens upstream; handlers read the resolved actor and
// warehouse scope from the X-User-ID and X-Warehouse-ID headers.
package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/bin"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/shipment"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names for the identity resolved by the upstream gateway.
const (
	HeaderWarehouseID = "X-Warehouse-ID"
	HeaderUserID      = "X-User-ID"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	scanBinHandler           commands.ScanBinCommandHandler
	assignPackageHandler     commands.AssignPackageCommandHandler
	reconcileManifestHandler commands.ReconcileManifestCommandHandler
	pickupPackageHandler     commands.PickupPackageCommandHandler
	dispatchPackageHandler   commands.DispatchPackageCommandHandler
	markDeliveredHandler     commands.MarkDeliveredCommandHandler
	dissociatePackageHandler commands.DissociatePackageCommandHandler
	assignOperatorHandler    commands.AssignOperatorCommandHandler
	autoAssignHandler        commands.AutoAssignCommandHandler

	getShipmentHandler           queries.GetShipmentQueryHandler
	getBinPackagesHandler        queries.GetBinPackagesQueryHandler
	getAuditLogsHandler          queries.GetAuditLogsQueryHandler
	getWarehouseOperatorsHandler queries.GetWarehouseOperatorsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	scanBinHandler commands.ScanBinCommandHandler,
	assignPackageHandler commands.AssignPackageCommandHandler,
	reconcileManifestHandler commands.ReconcileManifestCommandHandler,
	pickupPackageHandler commands.PickupPackageCommandHandler,
	dispatchPackageHandler commands.DispatchPackageCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	dissociatePackageHandler commands.DissociatePackageCommandHandler,
	assignOperatorHandler commands.AssignOperatorCommandHandler,
	autoAssignHandler commands.AutoAssignCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getBinPackagesHandler queries.GetBinPackagesQueryHandler,
	getAuditLogsHandler queries.GetAuditLogsQueryHandler,
	getWarehouseOperatorsHandler queries.GetWarehouseOperatorsQueryHandler,
) *Server {
	return &Server{
		scanBinHandler:               scanBinHandler,
		assignPackageHandler:         assignPackageHandler,
		reconcileManifestHandler:     reconcileManifestHandler,
		pickupPackageHandler:         pickupPackageHandler,
		dispatchPackageHandler:       dispatchPackageHandler,
		markDeliveredHandler:         markDeliveredHandler,
		dissociatePackageHandler:     dissociatePackageHandler,
		assignOperatorHandler:        assignOperatorHandler,
		autoAssignHandler:            autoAssignHandler,
		getShipmentHandler:           getShipmentHandler,
		getBinPackagesHandler:        getBinPackagesHandler,
		getAuditLogsHandler:          getAuditLogsHandler,
		getWarehouseOperatorsHandler: getWarehouseOperatorsHandler,
	}
}

// RegisterRoutes attaches all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/bins/scan", s.ScanBin)
	v1.POST("/packages/assign", s.AssignPackage)
	v1.POST("/manifests/reconcile", s.ReconcileManifest)
	v1.POST("/packages/pickup", s.PickupPackage)
	v1.POST("/packages/dispatch", s.DispatchPackage)
	v1.POST("/packages/delivered", s.MarkDelivered)
	v1.POST("/packages/dissociate", s.DissociatePackage)
	v1.POST("/picklists/assign", s.AssignOperator)
	v1.POST("/picklists/auto-assign", s.AutoAssign)

	v1.GET("/packages/:trackingID", s.GetPackage)
	v1.GET("/bins/:binID/packages", s.GetBinPackages)
	v1.GET("/audit-logs", s.GetAuditLogs)
	v1.GET("/operators", s.GetOperators)
}

// ScanBin handles POST /api/v1/bins/scan - resolves a scanned bin barcode,
// auto-provisioning unknown bins.
func (s *Server) ScanBin(ctx echo.Context) error {
	var request ScanBinRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := s.warehouseScope(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	binID, err := kernel.NewBinID(request.BinID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewScanBinCommand(binID, warehouseID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.scanBinHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	return ctx.JSON(status, ScanBinResponse{
		BinID:     result.BinID,
		Location:  result.Location,
		Capacity:  result.Capacity,
		Occupancy: result.Occupancy,
		Created:   result.Created,
	})
}

// AssignPackage handles POST /api/v1/packages/assign - stores a package
// into a bin.
func (s *Server) AssignPackage(ctx echo.Context) error {
	var request AssignPackageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := s.warehouseScope(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	binID, err := kernel.NewBinID(request.BinID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	trackingID, err := kernel.NewTrackingID(request.TrackingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignPackageCommand(binID, trackingID, warehouseID, s.actor(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReconcileManifest handles POST /api/v1/manifests/reconcile - upserts the
// announced packages of a manifest, reporting per-item outcomes.
func (s *Server) ReconcileManifest(ctx echo.Context) error {
	var request ReconcileManifestRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := s.warehouseScope(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewReconcileManifestCommand(request.TrackingIDs, warehouseID, s.actor(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	results, err := s.reconcileManifestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResults(results))
}

// PickupPackage handles POST /api/v1/packages/pickup - confirms a physical
// pick against the expected identifier.
func (s *Server) PickupPackage(ctx echo.Context) error {
	var request PickupPackageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	trackingID, err := kernel.NewTrackingID(request.TrackingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	confirmation, err := kernel.NewTrackingID(request.Confirmation)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewPickupPackageCommand(trackingID, confirmation, s.actor(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.pickupPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchPackage handles POST /api/v1/packages/dispatch - sends a package
// out of the warehouse.
func (s *Server) DispatchPackage(ctx echo.Context) error {
	var request DispatchPackageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := s.warehouseScope(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	trackingID, err := kernel.NewTrackingID(request.TrackingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDispatchPackageCommand(trackingID, warehouseID, s.actor(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.dispatchPackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/packages/delivered - confirms delivery
// of a dispatched package.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	var request MarkDeliveredRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	trackingID, err := kernel.NewTrackingID(request.TrackingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(trackingID, s.actor(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DissociatePackage handles POST /api/v1/packages/dissociate - releases a
// package from its bin outside the pick path.
func (s *Server) DissociatePackage(ctx echo.Context) error {
	var request DissociatePackageRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	trackingID, err := kernel.NewTrackingID(request.TrackingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	binID, err := kernel.NewBinID(request.BinID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDissociatePackageCommand(trackingID, binID, s.actor(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.dissociatePackageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignOperator handles POST /api/v1/picklists/assign - puts packages on a
// chosen operator's picklist.
func (s *Server) AssignOperator(ctx echo.Context) error {
	var request AssignOperatorRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := s.warehouseScope(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	operatorID, err := kernel.UUIDFromString(request.OperatorID)
	if err != nil {
		return badRequest(ctx, "invalid operator id")
	}

	cmd, err := commands.NewAssignOperatorCommand(request.TrackingIDs, operatorID, warehouseID, s.actor(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	results, err := s.assignOperatorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResults(results))
}

// AutoAssign handles POST /api/v1/picklists/auto-assign - distributes
// packages over the warehouse's active operators round-robin.
func (s *Server) AutoAssign(ctx echo.Context) error {
	var request AutoAssignRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	warehouseID, err := s.warehouseScope(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAutoAssignCommand(request.TrackingIDs, warehouseID, s.actor(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	results, err := s.autoAssignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, batchResults(results))
}

// GetPackage handles GET /api/v1/packages/:trackingID - retrieves a package
// with its bin location, scoped to the caller's warehouse when one is set.
func (s *Server) GetPackage(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(trackingID, s.optionalWarehouseScope(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	pkg, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Package{
		TrackingID:  pkg.TrackingID,
		Status:      pkg.Status,
		Manifested:  pkg.Manifested,
		WarehouseID: uuidString(pkg.WarehouseID),
		BinID:       pkg.BinID,
		BinLocation: pkg.BinLocation,
		OperatorID:  uuidString(pkg.OperatorID),
		TimeIn:      pkg.TimeIn,
		TimeOut:     pkg.TimeOut,
	})
}

// GetBinPackages handles GET /api/v1/bins/:binID/packages - retrieves a bin
// and its contents, putaway packages first.
func (s *Server) GetBinPackages(ctx echo.Context) error {
	binID, err := kernel.NewBinID(ctx.Param("binID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetBinPackagesQuery(binID, s.optionalWarehouseScope(ctx))
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getBinPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	packages := make([]BinPackage, len(result.Packages))
	for i, pkg := range result.Packages {
		packages[i] = BinPackage{
			TrackingID: pkg.TrackingID,
			Status:     pkg.Status,
			Manifested: pkg.Manifested,
			TimeIn:     pkg.TimeIn,
		}
	}

	return ctx.JSON(http.StatusOK, Bin{
		BinID:    result.BinID,
		Location: result.Location,
		Capacity: result.Capacity,
		Status:   result.Status,
		Packages: packages,
	})
}

// GetAuditLogs handles GET /api/v1/audit-logs - retrieves the newest audit
// entries, optionally filtered by tracking identifier.
func (s *Server) GetAuditLogs(ctx echo.Context) error {
	var trackingID *kernel.TrackingID
	if raw := ctx.QueryParam("tracking_id"); raw != "" {
		id, err := kernel.NewTrackingID(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		trackingID = &id
	}

	limit := 0
	if err := echo.QueryParamsBinder(ctx).Int("limit", &limit).BindError(); err != nil {
		return badRequest(ctx, "invalid limit")
	}

	query, err := queries.NewGetAuditLogsQuery(trackingID, s.optionalWarehouseScope(ctx), limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	entries, err := s.getAuditLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]AuditLog, len(entries))
	for i, entry := range entries {
		response[i] = AuditLog{
			ID:         entry.ID.String(),
			Action:     entry.Action,
			TrackingID: entry.TrackingID,
			UserID:     uuidString(entry.UserID),
			Details:    entry.Details,
			Timestamp:  entry.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOperators handles GET /api/v1/operators - retrieves the warehouse's
// assignable operators with their picklist load.
func (s *Server) GetOperators(ctx echo.Context) error {
	warehouseID, err := s.warehouseScope(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetWarehouseOperatorsQuery(warehouseID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	operators, err := s.getWarehouseOperatorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Operator, len(operators))
	for i, op := range operators {
		response[i] = Operator{
			ID:            op.ID.String(),
			Name:          op.Name,
			PicklistCount: op.PicklistCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// warehouseScope resolves the mandatory warehouse header.
func (s *Server) warehouseScope(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(HeaderWarehouseID)
	if raw == "" {
		return kernel.UUID{}, commands.ErrNoWarehouseSelected
	}

	warehouseID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, commands.ErrNoWarehouseSelected
	}

	return warehouseID, nil
}

// optionalWarehouseScope resolves the warehouse header when present;
// superadmin callers omit it and see across warehouses.
func (s *Server) optionalWarehouseScope(ctx echo.Context) *kernel.UUID {
	warehouseID, err := s.warehouseScope(ctx)
	if err != nil {
		return nil
	}
	return &warehouseID
}

// actor resolves the acting user header, nil for anonymous station calls.
func (s *Server) actor(ctx echo.Context) *kernel.UUID {
	raw := ctx.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return nil
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil
	}

	return &userID
}

func batchResults(results []commands.ItemResult) []BatchItemResult {
	response := make([]BatchItemResult, len(results))
	for i, result := range results {
		item := BatchItemResult{
			TrackingID: result.TrackingID.String(),
			Outcome:    string(result.Outcome),
		}
		if result.Err != nil {
			item.Error = result.Err.Error()
		}
		response[i] = item
	}
	return response
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain errors onto HTTP status codes: validation
// failures to 400, unknown objects to 404, foreign-warehouse access to 403,
// and state conflicts (capacity, availability, transitions, mismatches,
// empty operator pool) to 409.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, commands.ErrNoWarehouseSelected),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrCrossWarehouse):
		status = http.StatusForbidden
	case errors.Is(err, bin.ErrBinUnavailable),
		errors.Is(err, bin.ErrCapacityExceeded),
		errors.Is(err, shipment.ErrInvalidStateTransition),
		errors.Is(err, shipment.ErrMismatch),
		errors.Is(err, services.ErrNoOperators):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

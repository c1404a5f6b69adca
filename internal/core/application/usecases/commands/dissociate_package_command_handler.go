package commands

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/audit"
)

// DissociatePackageCommandHandler handles counter handover of a package.
// Picked-up is terminal: a second dissociation of the same package fails.
type DissociatePackageCommandHandler struct {
	uowFactory StorageUoWFactory
}

// NewDissociatePackageCommandHandler creates a handler for package handover.
func NewDissociatePackageCommandHandler(uowFactory StorageUoWFactory) DissociatePackageCommandHandler {
	return DissociatePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dissociation command.
// The scanned bin must be the package's current bin (MismatchError
// otherwise, no state change). On success the package closes out as
// picked-up with its bin cleared, the bin reverts to available once empty,
// and the dissociated audit entry shares the transaction.
func (h DissociatePackageCommandHandler) Handle(ctx context.Context, command DissociatePackageCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	binRepo := uow.BinRepository()

	pkg, err := shipmentRepo.GetForUpdate(ctx, command.TrackingID())
	if err != nil {
		return err
	}

	if err = pkg.Dissociate(command.BinID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, pkg); err != nil {
		return err
	}

	releasedBin, err := binRepo.GetForUpdate(ctx, command.BinID())
	if err != nil {
		return err
	}

	remaining, err := shipmentRepo.CountInBin(ctx, command.BinID())
	if err != nil {
		return err
	}

	if !releasedBin.ReleaseIfEmpty(remaining) {
		putaway, countErr := shipmentRepo.CountPutawayInBin(ctx, command.BinID())
		if countErr != nil {
			return countErr
		}
		releasedBin.RecordOccupancy(putaway)
	}
	if err = binRepo.Update(ctx, releasedBin); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		audit.ActionDissociated, command.TrackingID(), pkg.Warehouse(), command.ActorID(),
		fmt.Sprintf("Package %s dissociated from bin %s", command.TrackingID(), command.BinID()),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

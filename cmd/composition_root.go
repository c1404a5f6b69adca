package cmd

import (
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateScanBinCommandHandler() commands.ScanBinCommandHandler {
	return commands.NewScanBinCommandHandler(c.storageUoWFactory())
}

func (c *CompositionRoot) CreateAssignPackageCommandHandler() commands.AssignPackageCommandHandler {
	return commands.NewAssignPackageCommandHandler(c.storageUoWFactory())
}

func (c *CompositionRoot) CreateReconcileManifestCommandHandler() commands.ReconcileManifestCommandHandler {
	return commands.NewReconcileManifestCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreatePickupPackageCommandHandler() commands.PickupPackageCommandHandler {
	return commands.NewPickupPackageCommandHandler(c.storageUoWFactory())
}

func (c *CompositionRoot) CreateDispatchPackageCommandHandler() commands.DispatchPackageCommandHandler {
	return commands.NewDispatchPackageCommandHandler(c.storageUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateDissociatePackageCommandHandler() commands.DissociatePackageCommandHandler {
	return commands.NewDissociatePackageCommandHandler(c.storageUoWFactory())
}

func (c *CompositionRoot) CreateAssignOperatorCommandHandler() commands.AssignOperatorCommandHandler {
	return commands.NewAssignOperatorCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateAutoAssignCommandHandler() commands.AutoAssignCommandHandler {
	return commands.NewAutoAssignCommandHandler(c.assignmentUoWFactory())
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBinPackagesQueryHandler() queries.GetBinPackagesQueryHandler {
	return queries.NewGetBinPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditLogsQueryHandler() queries.GetAuditLogsQueryHandler {
	return queries.NewGetAuditLogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWarehouseOperatorsQueryHandler() queries.GetWarehouseOperatorsQueryHandler {
	return queries.NewGetWarehouseOperatorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalePutawayQueryHandler() queries.GetStalePutawayQueryHandler {
	return queries.NewGetStalePutawayQueryHandler(c.gormDB)
}

func (c *CompositionRoot) ledgerUoWFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) storageUoWFactory() commands.StorageUoWFactory {
	return FuncStorageUoWFactory(func() commands.StorageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assignmentUoWFactory() commands.AssignmentUoWFactory {
	return FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncStorageUoWFactory func() commands.StorageUoW

func (f FuncStorageUoWFactory) Create() commands.StorageUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// BinRepoFactory provides access to the bin repository within a transaction.
	BinRepoFactory interface {
		BinRepository() ports.BinRepository
	}

	// AuditRepoFactory provides access to the audit log repository within a transaction.
	AuditRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// OperatorRepoFactory provides access to the operator repository within a transaction.
	OperatorRepoFactory interface {
		OperatorRepository() ports.OperatorRepository
	}

	// LedgerUoW manages transactions for shipment-only mutations plus their
	// audit entry. Used by commands that never touch bin occupancy.
	LedgerUoW interface {
		TxManager
		ShipmentRepoFactory
		AuditRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// StorageUoW manages transactions that move shipments in or out of bins.
	// The audit entry shares the transaction with both aggregates.
	StorageUoW interface {
		TxManager
		ShipmentRepoFactory
		BinRepoFactory
		AuditRepoFactory
	}

	// StorageUoWFactory creates new storage unit of work instances.
	StorageUoWFactory interface {
		Create() StorageUoW
	}

	// AssignmentUoW manages transactions for picklist assignment, which reads
	// operators, mutates shipments, recomputes bin occupancy, and audits.
	AssignmentUoW interface {
		TxManager
		ShipmentRepoFactory
		BinRepoFactory
		OperatorRepoFactory
		AuditRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}
)

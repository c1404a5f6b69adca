// Package operator contains the read model for warehouse staff consulted by
// the assignment scheduler. Operator administration (creation, role changes,
// deactivation) happens outside the engine; the scheduler only reads.
package operator

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrOperatorIsNotConstructed is returned when an Operator was not created
// via NewOperator.
var ErrOperatorIsNotConstructed = errors.New("Operator must be created via NewOperator constructor")

// Role is a warehouse staff role. Only RoleOperator is eligible for pick
// assignment; the remaining roles exist for scope checks at the
// authorization boundary.
type Role string

const (
	RoleSuperadmin     Role = "SUPERADMIN"
	RoleOperationHead  Role = "OPERATION_HEAD"
	RoleWarehouseAdmin Role = "WAREHOUSE_ADMIN"
	RoleOperator       Role = "OPERATOR"
)

// Validate checks if the Role value is one of the known roles.
func (r Role) Validate() error {
	switch r {
	case RoleSuperadmin, RoleOperationHead, RoleWarehouseAdmin, RoleOperator:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// Operator is a warehouse staff member eligible to receive picklists.
type Operator struct {
	id          kernel.UUID
	name        string
	role        Role
	warehouseID kernel.UUID
	active      bool

	isConstructed bool
}

// NewOperator creates an Operator read model instance.
func NewOperator(id kernel.UUID, name string, role Role, warehouseID kernel.UUID, active bool) (*Operator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	return &Operator{
		id:            id,
		name:          name,
		role:          role,
		warehouseID:   warehouseID,
		active:        active,
		isConstructed: true,
	}, nil
}

// Validate ensures the Operator was properly constructed.
func (o *Operator) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOperatorIsNotConstructed
	}
	return nil
}

// ID returns the operator's identity.
func (o *Operator) ID() kernel.UUID {
	return o.id
}

// Name returns the operator's display name.
func (o *Operator) Name() string {
	return o.name
}

// Role returns the operator's role.
func (o *Operator) Role() Role {
	return o.role
}

// Warehouse returns the warehouse the operator works in.
func (o *Operator) Warehouse() kernel.UUID {
	return o.warehouseID
}

// Active reports whether the operator may receive new assignments.
func (o *Operator) Active() bool {
	return o.active
}

// EnsureAssignable verifies that the operator can receive picklists in the
// given warehouse: role must be OPERATOR, the operator must be active, and
// must belong to the warehouse.
func (o *Operator) EnsureAssignable(warehouseID kernel.UUID) error {
	if o.role != RoleOperator {
		return errs.NewValueIsInvalidErrorWithCause("operator role",
			fmt.Errorf("%s has role %s, want %s", o.id, o.role, RoleOperator))
	}
	if !o.active {
		return errs.NewValueIsInvalidErrorWithCause("operator",
			fmt.Errorf("%s is not active", o.id))
	}
	if !o.warehouseID.IsEqual(warehouseID) {
		return errs.NewCrossWarehouseError("operator", o.id.String(), o.warehouseID.String())
	}
	return nil
}

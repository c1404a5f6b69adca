package audit

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Action classifies the mutation an audit entry records.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionAssigned records a shipment stored into a bin.
	ActionAssigned

	// ActionUpdated records a status change outside the assign/dispatch/
	// dissociate family (manifest reconciliation, picking, operator
	// assignment).
	ActionUpdated

	// ActionDissociated records a shipment released from its bin.
	ActionDissociated

	// ActionDispatched records a shipment leaving the warehouse.
	ActionDispatched

	// ActionDelivered records a dispatched shipment confirmed delivered.
	ActionDelivered
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:     "unknown",
		ActionAssigned:    "assigned",
		ActionUpdated:     "updated",
		ActionDissociated: "dissociated",
		ActionDispatched:  "dispatched",
		ActionDelivered:   "delivered",
	}
}

func getValidActionStrings() map[Action]string {
	//nolint:exhaustive // ActionUnknown is intentionally excluded as it's invalid
	return map[Action]string{
		ActionAssigned:    "assigned",
		ActionUpdated:     "updated",
		ActionDissociated: "dissociated",
		ActionDispatched:  "dispatched",
		ActionDelivered:   "delivered",
	}
}

// Validate checks if the Action value is valid.
func (a Action) Validate() error {
	if _, ok := getValidActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid audit action", a))
	}
	return nil
}

// String returns the wire name of the action (e.g. "dissociated").
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// ActionFromString parses a wire name back into an Action.
func ActionFromString(s string) (Action, error) {
	for action, name := range getValidActionStrings() {
		if name == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%q is not a valid audit action", s))
}

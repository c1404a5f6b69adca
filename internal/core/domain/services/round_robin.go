package services

import (
	"errors"
	"sort"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/operator"
)

// ErrNoOperators is returned when automatic distribution finds no operator
// eligible for assignment in the warehouse.
var ErrNoOperators = errors.New("no operators available")

// RoundRobinDistributor is a domain service spreading picklist assignments
// evenly across a warehouse's operators. The operator pool is ordered by
// identity so repeated runs over the same pool produce the same pairing.
type RoundRobinDistributor struct{}

// NewRoundRobinDistributor creates a new RoundRobinDistributor instance.
func NewRoundRobinDistributor() RoundRobinDistributor {
	return RoundRobinDistributor{}
}

// Distribute pairs each tracking identifier with an operator in round-robin
// order: operators sorted by identity, the i-th identifier going to operator
// i modulo pool size. Returns ErrNoOperators when the pool is empty.
func (d RoundRobinDistributor) Distribute(
	trackingIDs []kernel.TrackingID, operators []*operator.Operator,
) (map[kernel.TrackingID]kernel.UUID, error) {
	if len(operators) == 0 {
		return nil, ErrNoOperators
	}

	pool := make([]*operator.Operator, len(operators))
	copy(pool, operators)
	for _, op := range pool {
		if err := op.Validate(); err != nil {
			return nil, err
		}
	}
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].ID().String() < pool[j].ID().String()
	})

	assignments := make(map[kernel.TrackingID]kernel.UUID, len(trackingIDs))
	for i, trackingID := range trackingIDs {
		assignments[trackingID] = pool[i%len(pool)].ID()
	}

	return assignments, nil
}

package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrNoWarehouseSelected is returned before any item is processed when a
// warehouse-scoped batch command was constructed without a resolved
// warehouse.
var ErrNoWarehouseSelected = errors.New("no warehouse selected")

// ItemOutcome classifies the result of one item in a batch command.
type ItemOutcome string

const (
	OutcomeCreated ItemOutcome = "created"
	OutcomeUpdated ItemOutcome = "updated"
	OutcomeFailed  ItemOutcome = "failed"
)

// ItemResult reports the outcome of a single tracking identifier in a batch
// command. Batches are per-item atomic: a failed item rolls back alone and
// never aborts the rest of the batch.
type ItemResult struct {
	TrackingID kernel.TrackingID
	Outcome    ItemOutcome
	Err        error
}

// normalizeTrackingIDs trims, upper-cases, drops empties, and deduplicates
// raw identifiers while preserving first-seen order.
func normalizeTrackingIDs(raw []string) ([]kernel.TrackingID, error) {
	seen := make(map[kernel.TrackingID]struct{}, len(raw))
	trackingIDs := make([]kernel.TrackingID, 0, len(raw))

	for _, value := range raw {
		trackingID, err := kernel.NewTrackingID(value)
		if err != nil {
			if errors.Is(err, errs.ErrValueIsRequired) {
				continue
			}
			return nil, err
		}

		if _, ok := seen[trackingID]; ok {
			continue
		}
		seen[trackingID] = struct{}{}
		trackingIDs = append(trackingIDs, trackingID)
	}

	return trackingIDs, nil
}

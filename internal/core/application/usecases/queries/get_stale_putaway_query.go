package queries

import (
	"errors"
	"time"

	"warehouse/internal/pkg/guard"
)

var ErrGetStalePutawayQueryIsNotConstructed = errors.New(
	"GetStalePutawayQuery must be created via NewGetStalePutawayQuery constructor",
)

// GetStalePutawayQuery retrieves packages sitting putaway since before a
// cutoff time. Used by the periodic report job; it never mutates anything.
type GetStalePutawayQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStalePutawayQuery creates a query for packages putaway before cutoff.
func NewGetStalePutawayQuery(cutoff time.Time) (GetStalePutawayQuery, error) {
	if cutoff.IsZero() {
		return GetStalePutawayQuery{}, errors.New("cutoff is required")
	}

	return GetStalePutawayQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePutawayQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePutawayQueryIsNotConstructed)
}

// Cutoff returns the intake-time threshold.
func (q GetStalePutawayQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStalePutawayQueryResponse is one overdue package in the read model.
type GetStalePutawayQueryResponse struct {
	TrackingID string
	BinID      *string
	TimeIn     time.Time
}

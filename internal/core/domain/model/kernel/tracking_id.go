package kernel

import (
	"strings"

	"warehouse/internal/pkg/errs"
)

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not created via NewTrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError("TrackingID must be created via NewTrackingID")

// TrackingID is the identity of a shipment as printed on its label.
//
// Raw identifiers arrive from barcode scanners and manifest files with
// inconsistent casing and stray whitespace, so the constructor normalizes
// them: "x1 " and "X1" are the same identity. The zero value is invalid.
type TrackingID struct {
	value string
}

// NewTrackingID creates a TrackingID from a raw scanned or uploaded value.
// The value is trimmed and upper-cased; an identifier that is empty after
// trimming is rejected with a ValueIsRequiredError.
func NewTrackingID(raw string) (TrackingID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingId")
	}

	return TrackingID{value: normalized}, nil
}

// String returns the normalized identifier.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking identifiers by normalized value.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate checks if the TrackingID is properly constructed.
func (t TrackingID) Validate() error {
	if t.value == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}

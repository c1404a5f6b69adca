package kernel

import (
	"strings"

	"warehouse/internal/pkg/errs"
)

// ErrBinIDIsNotConstructed indicates that a BinID was not created via NewBinID.
var ErrBinIDIsNotConstructed = errs.NewValueIsRequiredError("BinID must be created via NewBinID")

// BinID is the identity of a storage bin as printed on its barcode.
// Like TrackingID, the constructor normalizes scanner input by trimming
// whitespace and upper-casing. The zero value is invalid.
type BinID struct {
	value string
}

// NewBinID creates a BinID from a raw scanned value.
// The value is trimmed and upper-cased; an identifier that is empty after
// trimming is rejected with a ValueIsRequiredError.
func NewBinID(raw string) (BinID, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return BinID{}, errs.NewValueIsRequiredError("binId")
	}

	return BinID{value: normalized}, nil
}

// String returns the normalized identifier.
func (b BinID) String() string {
	return b.value
}

// IsEqual compares two bin identifiers by normalized value.
func (b BinID) IsEqual(other BinID) bool {
	return b.value == other.value
}

// Validate checks if the BinID is properly constructed.
func (b BinID) Validate() error {
	if b.value == "" {
		return ErrBinIDIsNotConstructed
	}
	return nil
}

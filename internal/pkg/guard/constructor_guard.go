// Package guard provides a defensive construction pattern for value objects
// and commands, ensuring they are only created through their designated
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable: the internal flag is only set
// when the object is created through the proper constructor.
//
// Example usage:
//
//	type ScanBinCommand struct {
//	    binID kernel.BinID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewScanBinCommand(binID kernel.BinID) (ScanBinCommand, error) {
//	    if err := binID.Validate(); err != nil {
//	        return ScanBinCommand{}, err
//	    }
//	    return ScanBinCommand{binID: binID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ScanBinCommand) Validate() error {
//	    return c.guard.Validate(ErrScanBinCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call this in the constructor of guarded objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns validationError for zero-value instances, or
// ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

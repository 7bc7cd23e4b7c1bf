package kernel

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is a defensive programming pattern that ensures value objects
// and entities are only created through their designated constructor functions.
// By embedding a ConstructorGuard in a struct, you can detect whether the struct
// was properly initialized through its constructor or created as a zero value.
//
// Example:
//
//	var ErrTimelineNotConstructed = errors.New("Timeline must be created via NewTimeline")
//
//	type Timeline struct {
//	    expectedStart time.Time
//	    guard         ConstructorGuard
//	}
//
//	func (tl Timeline) Validate() error {
//	    return tl.guard.Validate(ErrTimelineNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of domain objects so they can be
// distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was constructed through its
// designated constructor. Otherwise it returns validationError, falling back
// to ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

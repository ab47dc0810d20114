// Package guard provides a small helper that ensures domain objects are only
// created through their validating constructors. Embedding a ConstructorGuard
// in a struct makes the zero value detectable: a guard that was never produced
// by NewConstructorGuard fails validation.
package guard

import "errors"

// ErrNotConstructed is the default error returned when an object bypassed its
// constructor and Validate was called with a nil override.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the embedding object went through its
// constructor. The zero value is intentionally invalid.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state. Constructors
// assign it to the object they build; everything else keeps the zero value.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed. Otherwise it
// returns notConstructedErr, or ErrNotConstructed when none was supplied.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrNotConstructed
	}

	return notConstructedErr
}

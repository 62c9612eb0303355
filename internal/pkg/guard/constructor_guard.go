// Package guard provides a small helper for enforcing that value objects
// and commands are created through their constructors rather than as zero
// values. Embedding a ConstructorGuard in a struct makes the zero value
// detectable.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no custom error is supplied
// and the guarded object was not created through its constructor.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// is invalid; constructors must embed the result of NewConstructorGuard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the guarded object was properly constructed.
// For zero-value guards it returns notConstructedErr, or ErrNotConstructed
// when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrNotConstructed
	}
	return notConstructedErr
}

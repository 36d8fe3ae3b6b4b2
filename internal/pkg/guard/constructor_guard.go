// Package guard provides the constructor guard shared by commands, queries and
// domain objects to reject zero-value instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its constructor. Embed it in a
// struct and call Validate from the struct's own Validate method; the zero value
// always fails.
//
// Example:
//
//	type ListDevelopersQuery struct {
//	    sort  ports.SortBy
//	    guard guard.ConstructorGuard
//	}
//
//	func (q ListDevelopersQuery) Validate() error {
//	    return q.guard.Validate(ErrListDevelopersQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

// Package guard provides a marker that tells a constructed value apart from its zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and aggregates that must only be built
// through their constructors. A zero value fails Validate.
//
// Example:
//
//	type GetCustomerQuery struct {
//	    id    kernel.ID
//	    guard guard.ConstructorGuard
//	}
//
//	func (q GetCustomerQuery) Validate() error {
//	    return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}

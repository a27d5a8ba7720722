package kernel

import (
	"customerorder/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrIDIsNotConstructed indicates that an ID was not initialised through NewID or IDFromString.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID, IDFromString or IDFromObjectID")

// ID is the identifier codec between caller-facing strings and the store's native identifier.
// It wraps a 12-byte ObjectID whose canonical string form is 24 lowercase hex characters.
//
// The zero value of ID is invalid.
//
// Example usage:
//
//	id, err := kernel.IDFromString("64f1c2a9e1b2c3d4e5f60718")
//	if err != nil {
//	    // reject the request before touching the store
//	}
//	fmt.Println(id.String())
type ID struct {
	oid primitive.ObjectID
}

// NewID generates a fresh identifier.
func NewID() ID {
	return ID{oid: primitive.NewObjectID()}
}

// IDFromString parses a 24-character hex identifier.
// Any other input fails with a ValueIsInvalidError.
func IDFromString(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if oid.IsZero() {
		return ID{}, errs.NewValueIsInvalidError("id")
	}
	return ID{oid: oid}, nil
}

// IDFromObjectID wraps an ObjectID read from the store.
func IDFromObjectID(oid primitive.ObjectID) (ID, error) {
	id := ID{oid: oid}
	if err := id.Validate(); err != nil {
		return ID{}, err
	}
	return id, nil
}

// String returns the canonical hex representation. It never fails.
func (id ID) String() string {
	return id.oid.Hex()
}

// ObjectID returns the native store identifier.
func (id ID) ObjectID() primitive.ObjectID {
	return id.oid
}

// IsEqual compares two IDs.
func (id ID) IsEqual(other ID) bool {
	return id.oid == other.oid
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id.oid.IsZero()
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.oid.IsZero() {
		return ErrIDIsNotConstructed
	}
	return nil
}

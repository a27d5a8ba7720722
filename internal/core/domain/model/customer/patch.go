package customer

import (
	"errors"
	"time"
)

// Patch is a partial update: nil fields are left untouched.
type Patch struct {
	FullName     *string
	EmailAddress *string
	PhoneNumber  *string

	// UpdatedAt is stamped by Stamp and written together with the supplied fields.
	UpdatedAt time.Time
}

// NewPatch validates every supplied field with the same rules as NewCustomer.
func NewPatch(fullName, emailAddress, phoneNumber *string) (Patch, error) {
	var probe Customer
	var errFullName, errEmail, errPhone error
	if fullName != nil {
		errFullName = probe.setFullName(*fullName)
	}
	if emailAddress != nil {
		errEmail = probe.setEmailAddress(*emailAddress)
	}
	if phoneNumber != nil {
		errPhone = probe.setPhoneNumber(*phoneNumber)
	}
	if err := errors.Join(errFullName, errEmail, errPhone); err != nil {
		return Patch{}, err
	}

	return Patch{
		FullName:     fullName,
		EmailAddress: emailAddress,
		PhoneNumber:  phoneNumber,
	}, nil
}

// IsEmpty reports whether no field was supplied.
func (p Patch) IsEmpty() bool {
	return p.FullName == nil && p.EmailAddress == nil && p.PhoneNumber == nil
}

// ChangesEmailOf reports whether the patch sets an email different from c's current one.
func (p Patch) ChangesEmailOf(c *Customer) bool {
	return p.EmailAddress != nil && *p.EmailAddress != c.EmailAddress()
}

// Stamp returns a copy of the patch carrying the modification time.
func (p Patch) Stamp(now time.Time) Patch {
	p.UpdatedAt = now
	return p
}

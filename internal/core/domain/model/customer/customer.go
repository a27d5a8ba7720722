package customer

import (
	"errors"
	"strings"
	"time"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/errs"
	"customerorder/internal/pkg/validation"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer was not created through
	// NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on a customer that already has an ID.
	ErrIDAlreadyAssigned = errors.New("customer ID is already assigned")
)

// Customer is the aggregate root for a person who places orders.
//
// Customer follows these invariants:
//   - FullName is non-empty
//   - EmailAddress is a valid email address
//   - PhoneNumber matches validation.PhonePattern
//   - CreatedAt is immutable
type Customer struct {
	id           kernel.ID
	fullName     string
	emailAddress string
	phoneNumber  string
	createdAt    time.Time
	updatedAt    *time.Time

	isConstructed bool
}

// NewCustomer creates a customer that has not been persisted yet.
// The identifier is assigned later through AssignID once the store generates it.
//
// Example:
//
//	c, err := customer.NewCustomer("Jaba Ganji", "ganji@jaba.com", "+254791111111", time.Now().UTC())
//	if err != nil {
//	    // reject the payload
//	}
func NewCustomer(fullName, emailAddress, phoneNumber string, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setFullName(fullName),
		c.setEmailAddress(emailAddress),
		c.setPhoneNumber(phoneNumber),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a persisted customer.
func RestoreCustomer(
	id kernel.ID,
	fullName, emailAddress, phoneNumber string,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	c, err := NewCustomer(fullName, emailAddress, phoneNumber, createdAt)
	if err != nil {
		return nil, err
	}
	c.id = id
	c.updatedAt = updatedAt

	return c, nil
}

// Validate ensures the Customer was built through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier. It may only be called once.
func (c *Customer) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !c.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	c.id = id
	return nil
}

// ID returns the customer's identifier (zero until persisted).
func (c *Customer) ID() kernel.ID {
	return c.id
}

// FullName returns the customer's name.
func (c *Customer) FullName() string {
	return c.fullName
}

// EmailAddress returns the customer's unique email address.
func (c *Customer) EmailAddress() string {
	return c.emailAddress
}

// PhoneNumber returns the number confirmations are texted to.
func (c *Customer) PhoneNumber() string {
	return c.phoneNumber
}

// CreatedAt returns the creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last modification timestamp, nil if never updated.
func (c *Customer) UpdatedAt() *time.Time {
	return c.updatedAt
}

func (c *Customer) setFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return errs.NewValueIsRequiredError("full_name")
	}
	c.fullName = fullName
	return nil
}

func (c *Customer) setEmailAddress(emailAddress string) error {
	if err := validation.Email(emailAddress); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email_address", err)
	}
	c.emailAddress = emailAddress
	return nil
}

func (c *Customer) setPhoneNumber(phoneNumber string) error {
	if err := validation.Phone(phoneNumber); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("phone_number", err)
	}
	c.phoneNumber = phoneNumber
	return nil
}

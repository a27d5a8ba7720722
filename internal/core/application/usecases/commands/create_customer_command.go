package commands

import (
	"errors"

	"customerorder/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand carries a new customer's details.
type CreateCustomerCommand struct {
	fullName     string
	emailAddress string
	phoneNumber  string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand builds the command. Field rules are enforced by customer.NewCustomer.
func NewCreateCustomerCommand(fullName, emailAddress, phoneNumber string) CreateCustomerCommand {
	return CreateCustomerCommand{
		fullName:     fullName,
		emailAddress: emailAddress,
		phoneNumber:  phoneNumber,
		guard:        guard.NewConstructorGuard(),
	}
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) FullName() string     { return c.fullName }
func (c CreateCustomerCommand) EmailAddress() string { return c.emailAddress }
func (c CreateCustomerCommand) PhoneNumber() string  { return c.phoneNumber }

package commands

import (
	"errors"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand is a partial update of one customer. Nil fields are not changed.
type UpdateCustomerCommand struct {
	customerID kernel.ID
	patch      customer.Patch

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand parses the identifier and validates every supplied field.
func NewUpdateCustomerCommand(
	rawCustomerID string,
	fullName, emailAddress, phoneNumber *string,
) (UpdateCustomerCommand, error) {
	id, err := kernel.IDFromString(rawCustomerID)
	if err != nil {
		return UpdateCustomerCommand{}, err
	}

	patch, err := customer.NewPatch(fullName, emailAddress, phoneNumber)
	if err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID: id,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.ID  { return c.customerID }
func (c UpdateCustomerCommand) Patch() customer.Patch { return c.patch }

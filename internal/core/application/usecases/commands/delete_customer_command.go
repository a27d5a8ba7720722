package commands

import (
	"errors"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand removes one customer. Orders referencing it are left in place.
type DeleteCustomerCommand struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteCustomerCommand(rawCustomerID string) (DeleteCustomerCommand, error) {
	id, err := kernel.IDFromString(rawCustomerID)
	if err != nil {
		return DeleteCustomerCommand{}, err
	}
	return DeleteCustomerCommand{customerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) CustomerID() kernel.ID { return c.customerID }

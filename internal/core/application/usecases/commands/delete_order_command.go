package commands

import (
	"errors"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes one order.
type DeleteOrderCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(rawOrderID string) (DeleteOrderCommand, error) {
	id, err := kernel.IDFromString(rawOrderID)
	if err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.ID { return c.orderID }

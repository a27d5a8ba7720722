package commands

import (
	"errors"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/core/domain/model/order"
	"customerorder/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is a partial update of one order. Nil fields are not changed.
type UpdateOrderCommand struct {
	orderID kernel.ID
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand parses the identifier and validates every supplied field,
// including the status enumeration.
func NewUpdateOrderCommand(rawOrderID string, item *string, price *float64, status *string) (UpdateOrderCommand, error) {
	id, err := kernel.IDFromString(rawOrderID)
	if err != nil {
		return UpdateOrderCommand{}, err
	}

	patch, err := order.NewPatch(item, price, status)
	if err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{orderID: id, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID { return c.orderID }
func (c UpdateOrderCommand) Patch() order.Patch { return c.patch }

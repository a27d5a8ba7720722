package commands

import (
	"errors"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/errs"
	"customerorder/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand carries a new order for an existing customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Widget", 9.99, "64f1c2a9e1b2c3d4e5f60718")
//	if err != nil {
//	    return err // malformed customer_id, nothing has been written
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	item       string
	price      float64
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand parses the customer identifier. Item and price rules are enforced
// by order.NewOrder.
func NewCreateOrderCommand(item string, price float64, rawCustomerID string) (CreateOrderCommand, error) {
	customerID, err := kernel.IDFromString(rawCustomerID)
	if err != nil {
		return CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}

	return CreateOrderCommand{
		item:       item,
		price:      price,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Item() string          { return c.item }
func (c CreateOrderCommand) Price() float64        { return c.price }
func (c CreateOrderCommand) CustomerID() kernel.ID { return c.customerID }

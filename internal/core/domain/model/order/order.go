package order

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrIDAlreadyAssigned is returned when AssignID is called on an order that already has an ID.
	ErrIDAlreadyAssigned = errors.New("order ID is already assigned")
)

// Order is the aggregate root for a single purchase by a customer.
//
// Order follows these invariants:
//   - Item is non-empty
//   - Price is greater than 0
//   - CustomerID is a valid identifier
//   - Status is Unset or one of the named statuses
type Order struct {
	id         kernel.ID
	item       string
	price      float64
	customerID kernel.ID
	status     Status
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewOrder creates an order that has not been persisted yet. Both timestamps are set to now.
//
// Example:
//
//	o, err := order.NewOrder("Widget", 9.99, customerID, time.Now().UTC())
//	if err != nil {
//	    // reject the payload
//	}
func NewOrder(item string, price float64, customerID kernel.ID, now time.Time) (*Order, error) {
	o := &Order{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setItem(item),
		o.setPrice(price),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order.
func RestoreOrder(
	id kernel.ID,
	item string,
	price float64,
	customerID kernel.ID,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	o, err := NewOrder(item, price, customerID, createdAt)
	if err != nil {
		return nil, err
	}
	o.id = id
	o.status = status
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the store-generated identifier. It may only be called once.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	o.id = id
	return nil
}

// ID returns the order's identifier (zero until persisted).
func (o *Order) ID() kernel.ID {
	return o.id
}

// Item returns what was ordered.
func (o *Order) Item() string {
	return o.item
}

// Price returns the total price.
func (o *Order) Price() float64 {
	return o.price
}

// CustomerID returns the referenced customer.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// Status returns the current status, Unset if never written.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ConfirmationMessage is the text sent to the customer once the order is stored.
func (o *Order) ConfirmationMessage(customerName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s.\n \n", customerName)
	fmt.Fprintf(&b, "Your order of %s with ID number %s has been placed successfully.\n \n ", o.item, o.id)
	fmt.Fprintf(&b, "The total price is %s. \n \n", strconv.FormatFloat(o.price, 'f', -1, 64))
	b.WriteString("Thank you for your order. We appreciate your business!")
	return b.String()
}

func (o *Order) setItem(item string) error {
	if strings.TrimSpace(item) == "" {
		return errs.NewValueIsRequiredError("item")
	}
	o.item = item
	return nil
}

func (o *Order) setPrice(price float64) error {
	if !(price > 0) {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	o.price = price
	return nil
}

func (o *Order) setCustomerID(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}
	o.customerID = customerID
	return nil
}

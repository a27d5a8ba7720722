package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"customerorder/internal/core/application/usecases/queries"
	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/order"
	"customerorder/internal/core/ports"
	"customerorder/internal/pkg/errs"
)

// CustomerCheck decides when the order workflow confirms that the referenced customer exists.
type CustomerCheck int

const (
	// CheckBeforeInsert looks the customer up first; a missing customer is a client error
	// and no order is written.
	CheckBeforeInsert CustomerCheck = iota

	// CheckAfterInsert inserts the order first and then looks the customer up. A missing
	// customer is a server error and the order stays stored.
	CheckAfterInsert
)

// ParseCustomerCheck maps before_insert|after_insert onto a CustomerCheck.
func ParseCustomerCheck(s string) (CustomerCheck, error) {
	switch s {
	case "", "before_insert":
		return CheckBeforeInsert, nil
	case "after_insert":
		return CheckAfterInsert, nil
	default:
		return 0, fmt.Errorf("unknown customer check policy %q", s)
	}
}

// ErrOrderCustomerUnresolved is returned under CheckAfterInsert when the order has been
// stored but its customer could not be read back.
var ErrOrderCustomerUnresolved = errors.New("order stored but its customer could not be resolved")

// CreateOrderCommandHandler stores an order and texts a confirmation to its customer.
//
// The sequence is: stamp → [lookup] → insert → [lookup] → compose → dispatch, with the lookup
// placed by the CustomerCheck policy. A dispatch failure is returned as a server error while
// the order stays stored; nothing is rolled back.
type CreateOrderCommandHandler struct {
	orders      ports.OrderRepository
	getCustomer queries.GetCustomerQueryHandler
	notifier    ports.Notifier
	check       CustomerCheck
	clock       Clock
	logger      *slog.Logger
}

func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	getCustomer queries.GetCustomerQueryHandler,
	notifier ports.Notifier,
	check CustomerCheck,
	clock Clock,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:      orders,
		getCustomer: getCustomer,
		notifier:    notifier,
		check:       check,
		clock:       clock,
		logger:      logger.With("component", "create_order_command_handler"),
	}
}

// Handle returns the stored order with its generated identifier.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.Item(), cmd.Price(), cmd.CustomerID(), h.clock())
	if err != nil {
		return nil, err
	}
	log := h.logger.With("customer_id", cmd.CustomerID().String())

	var owner *customer.Customer
	if h.check == CheckBeforeInsert {
		if owner, err = h.lookupCustomer(ctx, o); err != nil {
			logOutcome(log, "Order rejected", err)
			return nil, err
		}
	}

	log.InfoContext(ctx, "Creating order", "item", o.Item(), "price", o.Price())
	id, err := h.orders.Add(ctx, o)
	if err != nil {
		err = storeFailure("insert order", err)
		logOutcome(log, "Order creation failed", err)
		return nil, err
	}
	if err = o.AssignID(id); err != nil {
		return nil, err
	}
	log = log.With("order_id", id.String())
	log.InfoContext(ctx, "Order created")

	if h.check == CheckAfterInsert {
		if owner, err = h.lookupCustomer(ctx, o); err != nil {
			err = fmt.Errorf("%w: %s", ErrOrderCustomerUnresolved, err.Error())
			log.ErrorContext(ctx, "Order stored without a resolvable customer", "error", err)
			return nil, err
		}
	}

	if err = h.notify(ctx, owner, o); err != nil {
		log.ErrorContext(ctx, "Order confirmation was not delivered", "error", err)
		return nil, err
	}

	log.InfoContext(ctx, "Order confirmation sent", "phone_number", owner.PhoneNumber())
	return o, nil
}

func (h CreateOrderCommandHandler) lookupCustomer(ctx context.Context, o *order.Order) (*customer.Customer, error) {
	q, err := queries.NewGetCustomerQueryByID(o.CustomerID())
	if err != nil {
		return nil, err
	}
	return h.getCustomer.Handle(ctx, q)
}

func (h CreateOrderCommandHandler) notify(ctx context.Context, owner *customer.Customer, o *order.Order) error {
	err := h.notifier.Send(ctx, owner.PhoneNumber(), o.ConfirmationMessage(owner.FullName()))
	if err == nil || errors.Is(err, errs.ErrDeliveryFailed) {
		return err
	}
	return errs.NewDeliveryFailedErrorWithCause(owner.PhoneNumber(), err)
}

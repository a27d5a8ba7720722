package commands

import (
	"context"
	"log/slog"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/ports"
)

// CreateCustomerCommandHandler stamps and inserts a new customer.
// The unique index on the email address is the source of truth for uniqueness: a duplicate
// surfaces from the store as errs.ObjectAlreadyExistsError.
type CreateCustomerCommandHandler struct {
	customers ports.CustomerRepository
	clock     Clock
	logger    *slog.Logger
}

func NewCreateCustomerCommandHandler(
	customers ports.CustomerRepository,
	clock Clock,
	logger *slog.Logger,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		customers: customers,
		clock:     clock,
		logger:    logger.With("component", "create_customer_command_handler"),
	}
}

// Handle returns the stored customer with its generated identifier.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(cmd.FullName(), cmd.EmailAddress(), cmd.PhoneNumber(), h.clock())
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Creating customer", "email_address", c.EmailAddress())
	id, err := h.customers.Add(ctx, c)
	if err != nil {
		err = storeFailure("insert customer", err)
		logOutcome(h.logger, "Customer creation failed", err, "email_address", c.EmailAddress())
		return nil, err
	}

	if err = c.AssignID(id); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Customer created", "customer_id", id.String())
	return c, nil
}

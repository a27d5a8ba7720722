package commands

import (
	"context"
	"log/slog"

	"customerorder/internal/core/ports"
	"customerorder/internal/pkg/errs"
)

// DeleteCustomerCommandHandler removes a customer; a zero deleted count is "not found".
type DeleteCustomerCommandHandler struct {
	customers ports.CustomerRepository
	logger    *slog.Logger
}

func NewDeleteCustomerCommandHandler(customers ports.CustomerRepository, logger *slog.Logger) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		customers: customers,
		logger:    logger.With("component", "delete_customer_command_handler"),
	}
}

func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	id := cmd.CustomerID()
	log := h.logger.With("customer_id", id.String())

	deleted, err := h.customers.Delete(ctx, id)
	if err != nil {
		err = storeFailure("delete customer", err)
		logOutcome(log, "Customer deletion failed", err)
		return err
	}
	if deleted == 0 {
		log.WarnContext(ctx, "Customer not found")
		return errs.NewObjectNotFoundError("customer", id.String())
	}

	log.InfoContext(ctx, "Customer deleted")
	return nil
}

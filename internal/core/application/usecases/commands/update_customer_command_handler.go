package commands

import (
	"context"
	"errors"
	"log/slog"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/ports"
	"customerorder/internal/pkg/errs"
)

// UpdateCustomerCommandHandler applies a partial update to an existing customer.
//
// The checks run in this order:
//  1. the customer must exist (errs.ObjectNotFoundError otherwise)
//  2. a new email address must not belong to another customer (errs.ObjectAlreadyExistsError)
//  3. an empty patch returns the current record without writing
//  4. the supplied fields and updated_at are written, then the record is re-read
type UpdateCustomerCommandHandler struct {
	customers ports.CustomerRepository
	clock     Clock
	logger    *slog.Logger
}

func NewUpdateCustomerCommandHandler(
	customers ports.CustomerRepository,
	clock Clock,
	logger *slog.Logger,
) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		customers: customers,
		clock:     clock,
		logger:    logger.With("component", "update_customer_command_handler"),
	}
}

// Handle returns the customer as stored after the update.
func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id := cmd.CustomerID()
	patch := cmd.Patch()
	log := h.logger.With("customer_id", id.String())

	current, err := h.customers.Get(ctx, id)
	if err != nil {
		err = storeFailure("find customer", err)
		logOutcome(log, "Customer update rejected", err)
		return nil, err
	}

	if patch.ChangesEmailOf(current) {
		if err = h.ensureEmailIsFree(ctx, *patch.EmailAddress); err != nil {
			logOutcome(log, "Customer update rejected", err)
			return nil, err
		}
	}

	if patch.IsEmpty() {
		log.InfoContext(ctx, "No changes to update for customer")
		return current, nil
	}

	if _, err = h.customers.Update(ctx, id, patch.Stamp(h.clock())); err != nil {
		err = storeFailure("update customer", err)
		logOutcome(log, "Customer update failed", err)
		return nil, err
	}

	updated, err := h.customers.Get(ctx, id)
	if err != nil {
		return nil, storeFailure("find customer", err)
	}

	log.InfoContext(ctx, "Customer updated")
	return updated, nil
}

func (h UpdateCustomerCommandHandler) ensureEmailIsFree(ctx context.Context, emailAddress string) error {
	_, err := h.customers.FindByEmail(ctx, emailAddress)
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsError("email_address", emailAddress)
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	default:
		return storeFailure("find customer by email", err)
	}
}

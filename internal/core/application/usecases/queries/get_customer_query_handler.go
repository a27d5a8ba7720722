package queries

import (
	"context"
	"errors"
	"log/slog"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/ports"
	"customerorder/internal/pkg/errs"
)

// GetCustomerQueryHandler reads a customer; a missing record is errs.ObjectNotFoundError.
type GetCustomerQueryHandler struct {
	customers ports.CustomerRepository
	logger    *slog.Logger
}

func NewGetCustomerQueryHandler(customers ports.CustomerRepository, logger *slog.Logger) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{
		customers: customers,
		logger:    logger.With("component", "get_customer_query_handler"),
	}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, q GetCustomerQuery) (*customer.Customer, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	id := q.CustomerID().String()
	c, err := h.customers.Get(ctx, q.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "Customer not found", "customer_id", id)
			return nil, err
		}
		h.logger.ErrorContext(ctx, "Customer lookup failed", "customer_id", id, "error", err)
		return nil, errs.NewStoreFailureError("find customer", err)
	}

	return c, nil
}

package queries

import (
	"context"
	"errors"
	"log/slog"

	"customerorder/internal/core/domain/model/order"
	"customerorder/internal/core/ports"
	"customerorder/internal/pkg/errs"
)

// GetOrderQueryHandler reads an order; a missing record is errs.ObjectNotFoundError.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	logger *slog.Logger
}

func NewGetOrderQueryHandler(orders ports.OrderRepository, logger *slog.Logger) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orders: orders,
		logger: logger.With("component", "get_order_query_handler"),
	}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, q GetOrderQuery) (*order.Order, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	id := q.OrderID().String()
	o, err := h.orders.Get(ctx, q.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "Order not found", "order_id", id)
			return nil, err
		}
		h.logger.ErrorContext(ctx, "Order lookup failed", "order_id", id, "error", err)
		return nil, errs.NewStoreFailureError("find order", err)
	}

	return o, nil
}

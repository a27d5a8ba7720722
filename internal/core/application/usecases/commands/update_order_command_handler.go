package commands

import (
	"context"
	"log/slog"

	"customerorder/internal/core/domain/model/order"
	"customerorder/internal/core/ports"
)

// UpdateOrderCommandHandler applies a partial update to an existing order: existence first,
// empty patch short-circuits without a write, otherwise write then re-read.
type UpdateOrderCommandHandler struct {
	orders ports.OrderRepository
	clock  Clock
	logger *slog.Logger
}

func NewUpdateOrderCommandHandler(orders ports.OrderRepository, clock Clock, logger *slog.Logger) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orders: orders,
		clock:  clock,
		logger: logger.With("component", "update_order_command_handler"),
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	id := cmd.OrderID()
	patch := cmd.Patch()
	log := h.logger.With("order_id", id.String())

	current, err := h.orders.Get(ctx, id)
	if err != nil {
		err = storeFailure("find order", err)
		logOutcome(log, "Order update rejected", err)
		return nil, err
	}

	if patch.IsEmpty() {
		log.InfoContext(ctx, "No changes to update for order")
		return current, nil
	}

	if _, err = h.orders.Update(ctx, id, patch.Stamp(h.clock())); err != nil {
		err = storeFailure("update order", err)
		logOutcome(log, "Order update failed", err)
		return nil, err
	}

	updated, err := h.orders.Get(ctx, id)
	if err != nil {
		return nil, storeFailure("find order", err)
	}

	log.InfoContext(ctx, "Order updated")
	return updated, nil
}

package commands

import (
	"context"
	"log/slog"

	"customerorder/internal/core/ports"
	"customerorder/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes an order; a zero deleted count is "not found".
type DeleteOrderCommandHandler struct {
	orders ports.OrderRepository
	logger *slog.Logger
}

func NewDeleteOrderCommandHandler(orders ports.OrderRepository, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		orders: orders,
		logger: logger.With("component", "delete_order_command_handler"),
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	id := cmd.OrderID()
	log := h.logger.With("order_id", id.String())

	deleted, err := h.orders.Delete(ctx, id)
	if err != nil {
		err = storeFailure("delete order", err)
		logOutcome(log, "Order deletion failed", err)
		return err
	}
	if deleted == 0 {
		log.WarnContext(ctx, "Order not found")
		return errs.NewObjectNotFoundError("order", id.String())
	}

	log.InfoContext(ctx, "Order deleted")
	return nil
}

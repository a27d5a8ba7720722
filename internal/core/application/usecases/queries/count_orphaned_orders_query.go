package queries

import (
	"context"
	"errors"

	"customerorder/internal/core/ports"
	"customerorder/internal/pkg/errs"
	"customerorder/internal/pkg/guard"
)

var ErrCountOrphanedOrdersQueryIsNotConstructed = errors.New(
	"CountOrphanedOrdersQuery must be created via NewCountOrphanedOrdersQuery constructor",
)

// CountOrphanedOrdersQuery counts orders whose customer has been deleted.
type CountOrphanedOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewCountOrphanedOrdersQuery() CountOrphanedOrdersQuery {
	return CountOrphanedOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q CountOrphanedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrphanedOrdersQueryIsNotConstructed)
}

// CountOrphanedOrdersQueryHandler runs CountOrphanedOrdersQuery against the order store.
type CountOrphanedOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewCountOrphanedOrdersQueryHandler(orders ports.OrderRepository) CountOrphanedOrdersQueryHandler {
	return CountOrphanedOrdersQueryHandler{orders: orders}
}

func (h CountOrphanedOrdersQueryHandler) Handle(ctx context.Context, q CountOrphanedOrdersQuery) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}

	n, err := h.orders.CountOrphaned(ctx)
	if err != nil {
		return 0, errs.NewStoreFailureError("count orphaned orders", err)
	}
	return n, nil
}

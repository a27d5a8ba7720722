package queries

import (
	"errors"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order by identifier.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(rawOrderID string) (GetOrderQuery, error) {
	id, err := kernel.IDFromString(rawOrderID)
	if err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID { return q.orderID }

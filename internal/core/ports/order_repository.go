package ports

import (
	"context"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/core/domain/model/order"
)

// OrderRepository is the record store over the orders collection.
type OrderRepository interface {
	// Add inserts a new order and returns the store-generated identifier.
	Add(ctx context.Context, o *order.Order) (kernel.ID, error)

	// Get returns the order or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Update writes the supplied patch fields and returns the modified count.
	Update(ctx context.Context, id kernel.ID, patch order.Patch) (int64, error)

	// Delete removes the order and returns the deleted count.
	Delete(ctx context.Context, id kernel.ID) (int64, error)

	// CountOrphaned counts orders whose customer no longer exists.
	CountOrphaned(ctx context.Context) (int64, error)
}

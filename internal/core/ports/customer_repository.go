// Package ports defines the contracts between the application workflows and the
// infrastructure: the record store repositories and the notification gateway.
package ports

import (
	"context"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"
)

// CustomerRepository is the record store over the customers collection.
// Every call is a fresh round trip to the store.
type CustomerRepository interface {
	// Add inserts a new customer and returns the store-generated identifier.
	// A duplicate email address fails with errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, c *customer.Customer) (kernel.ID, error)

	// Get returns the customer or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)

	// FindByEmail returns the customer holding the email address or errs.ObjectNotFoundError.
	FindByEmail(ctx context.Context, emailAddress string) (*customer.Customer, error)

	// Update writes the supplied patch fields and returns the modified count.
	// Zero means the id did not exist or nothing changed; callers that care re-read.
	Update(ctx context.Context, id kernel.ID, patch customer.Patch) (int64, error)

	// Delete removes the customer and returns the deleted count.
	Delete(ctx context.Context, id kernel.ID) (int64, error)
}

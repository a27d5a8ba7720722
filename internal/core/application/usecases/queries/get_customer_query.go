// Package queries contains the read-only workflows for customers and orders.
package queries

import (
	"errors"

	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery reads one customer by identifier.
type GetCustomerQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery parses the caller-supplied identifier. A malformed value fails with
// errs.ValueIsInvalidError before the store is touched.
func NewGetCustomerQuery(rawCustomerID string) (GetCustomerQuery, error) {
	id, err := kernel.IDFromString(rawCustomerID)
	if err != nil {
		return GetCustomerQuery{}, err
	}
	return NewGetCustomerQueryByID(id)
}

// NewGetCustomerQueryByID builds the query from an already parsed identifier.
func NewGetCustomerQueryByID(customerID kernel.ID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() kernel.ID { return q.customerID }

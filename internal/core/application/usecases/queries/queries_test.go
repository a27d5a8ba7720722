package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"customerorder/internal/core/application/usecases/queries"
	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/core/domain/model/order"
	"customerorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(context.Context, *customer.Customer) (kernel.ID, error) {
	return kernel.ID{}, errors.New("not implemented in mock")
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(context.Context, string) (*customer.Customer, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockCustomerRepository) Update(context.Context, kernel.ID, customer.Patch) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

func (m *MockCustomerRepository) Delete(context.Context, kernel.ID) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(context.Context, *order.Order) (kernel.ID, error) {
	return kernel.ID{}, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Update(context.Context, kernel.ID, order.Patch) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Delete(context.Context, kernel.ID) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) CountOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestNewGetCustomerQuery(t *testing.T) {
	id := kernel.NewID()
	q, err := queries.NewGetCustomerQuery(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, q.CustomerID())

	_, err = queries.NewGetCustomerQuery("xyz")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetCustomerQueryByID(kernel.ID{})
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestGetCustomerQueryHandler_Handle(t *testing.T) {
	id := kernel.NewID()
	stored, err := customer.RestoreCustomer(id, "Jane Doe", "jane@example.com", "+254712345678", time.Now().UTC(), nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		found   *customer.Customer
		repoErr error
		wantErr error
	}{
		{name: "found", found: stored},
		{name: "not found", repoErr: errs.NewObjectNotFoundError("customer", id.String()), wantErr: errs.ErrObjectNotFound},
		{name: "store failure", repoErr: errors.New("socket closed"), wantErr: errs.ErrStoreFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCustomerRepository)
			repo.On("Get", mock.Anything, id).Return(tt.found, tt.repoErr).Once()

			q, err := queries.NewGetCustomerQuery(id.String())
			require.NoError(t, err)

			got, err := queries.NewGetCustomerQueryHandler(repo, discardLogger()).Handle(t.Context(), q)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Same(t, stored, got)
		})
	}
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	id := kernel.NewID()
	now := time.Now().UTC()
	stored, err := order.RestoreOrder(id, "Widget", 5, kernel.NewID(), order.Unset, now, now)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, id).Return(stored, nil).Once()

	q, err := queries.NewGetOrderQuery(id.String())
	require.NoError(t, err)

	got, err := queries.NewGetOrderQueryHandler(repo, discardLogger()).Handle(t.Context(), q)
	require.NoError(t, err)
	assert.Same(t, stored, got)

	_, err = queries.NewGetOrderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrderQueryHandler_Handle_NotConstructed(t *testing.T) {
	_, err := queries.NewGetOrderQueryHandler(new(MockOrderRepository), discardLogger()).
		Handle(t.Context(), queries.GetOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestCountOrphanedOrdersQueryHandler_Handle(t *testing.T) {
	repo := new(MockOrderRepository)
	repo.On("CountOrphaned", mock.Anything).Return(int64(3), nil).Once()

	n, err := queries.NewCountOrphanedOrdersQueryHandler(repo).Handle(t.Context(), queries.NewCountOrphanedOrdersQuery())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	repo.On("CountOrphaned", mock.Anything).Return(int64(0), errors.New("boom")).Once()
	_, err = queries.NewCountOrphanedOrdersQueryHandler(repo).Handle(t.Context(), queries.NewCountOrphanedOrdersQuery())
	require.ErrorIs(t, err, errs.ErrStoreFailure)
}

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"customerorder/internal/core/domain/model/customer"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func ptr[T any](v T) *T { return &v }

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) (kernel.ID, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, emailAddress string) (*customer.Customer, error) {
	args := m.Called(ctx, emailAddress)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id kernel.ID, patch customer.Patch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.ID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (kernel.ID, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, id kernel.ID, patch order.Patch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, phoneNumber, message string) error {
	args := m.Called(ctx, phoneNumber, message)
	return args.Error(0)
}

func storedCustomer(id kernel.ID, email string) *customer.Customer {
	c, err := customer.RestoreCustomer(id, "Jane Doe", email, "+254712345678", fixedNow, nil)
	if err != nil {
		panic(err)
	}
	return c
}

func storedOrder(id, customerID kernel.ID) *order.Order {
	o, err := order.RestoreOrder(id, "Widget", 9.99, customerID, order.Pending, fixedNow, fixedNow)
	if err != nil {
		panic(err)
	}
	return o
}

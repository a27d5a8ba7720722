package commands_test

import (
	"errors"
	"strings"
	"testing"

	"customerorder/internal/core/application/usecases/commands"
	"customerorder/internal/core/application/usecases/queries"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type createOrderFixture struct {
	customers *MockCustomerRepository
	orders    *MockOrderRepository
	notifier  *MockNotifier
}

func newCreateOrderFixture() createOrderFixture {
	return createOrderFixture{
		customers: new(MockCustomerRepository),
		orders:    new(MockOrderRepository),
		notifier:  new(MockNotifier),
	}
}

func (f createOrderFixture) handler(check commands.CustomerCheck) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		f.orders,
		queries.NewGetCustomerQueryHandler(f.customers, discardLogger()),
		f.notifier,
		check,
		fixedClock,
		discardLogger(),
	)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("Widget", 9.99, "not-an-id")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "customer_id", invalid.ParamName)
}

func TestParseCustomerCheck(t *testing.T) {
	check, err := commands.ParseCustomerCheck("")
	require.NoError(t, err)
	assert.Equal(t, commands.CheckBeforeInsert, check)

	check, err = commands.ParseCustomerCheck("after_insert")
	require.NoError(t, err)
	assert.Equal(t, commands.CheckAfterInsert, check)

	_, err = commands.ParseCustomerCheck("never")
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	for _, check := range []commands.CustomerCheck{commands.CheckBeforeInsert, commands.CheckAfterInsert} {
		f := newCreateOrderFixture()
		customerID, orderID := kernel.NewID(), kernel.NewID()
		owner := storedCustomer(customerID, "jane@example.com")

		f.customers.On("Get", mock.Anything, customerID).Return(owner, nil).Once()
		f.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(orderID, nil).Once()
		f.notifier.On("Send", mock.Anything, "+254712345678", mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "Hello Jane Doe.") &&
				strings.Contains(msg, "Widget") &&
				strings.Contains(msg, orderID.String()) &&
				strings.Contains(msg, "9.99")
		})).Return(nil).Once()

		cmd, err := commands.NewCreateOrderCommand("Widget", 9.99, customerID.String())
		require.NoError(t, err)

		o, err := f.handler(check).Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, orderID, o.ID())
		assert.Equal(t, customerID, o.CustomerID())
		assert.False(t, o.Status().IsSet())
		assert.Equal(t, fixedNow, o.CreatedAt())
		assert.Equal(t, fixedNow, o.UpdatedAt())

		f.customers.AssertExpectations(t)
		f.orders.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
	}
}

func TestCreateOrderCommandHandler_Handle_MissingCustomerBeforeInsert(t *testing.T) {
	f := newCreateOrderFixture()
	customerID := kernel.NewID()
	f.customers.On("Get", mock.Anything, customerID).
		Return(nil, errs.NewObjectNotFoundError("customer", customerID.String())).Once()

	cmd, err := commands.NewCreateOrderCommand("Widget", 9.99, customerID.String())
	require.NoError(t, err)

	_, err = f.handler(commands.CheckBeforeInsert).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.True(t, errs.IsClientError(err))
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_MissingCustomerAfterInsert(t *testing.T) {
	f := newCreateOrderFixture()
	customerID := kernel.NewID()
	f.orders.On("Add", mock.Anything, mock.Anything).Return(kernel.NewID(), nil).Once()
	f.customers.On("Get", mock.Anything, customerID).
		Return(nil, errs.NewObjectNotFoundError("customer", customerID.String())).Once()

	cmd, err := commands.NewCreateOrderCommand("Widget", 9.99, customerID.String())
	require.NoError(t, err)

	_, err = f.handler(commands.CheckAfterInsert).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, commands.ErrOrderCustomerUnresolved)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, errs.IsClientError(err))
	f.orders.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_InvalidOrder(t *testing.T) {
	f := newCreateOrderFixture()
	cmd, err := commands.NewCreateOrderCommand("", 0, kernel.NewID().String())
	require.NoError(t, err)

	_, err = f.handler(commands.CheckBeforeInsert).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	f.customers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_NotifyFailureKeepsOrder(t *testing.T) {
	f := newCreateOrderFixture()
	customerID := kernel.NewID()
	f.customers.On("Get", mock.Anything, customerID).Return(storedCustomer(customerID, "jane@example.com"), nil).Once()
	f.orders.On("Add", mock.Anything, mock.Anything).Return(kernel.NewID(), nil).Once()
	f.notifier.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("gateway unreachable")).Once()

	cmd, err := commands.NewCreateOrderCommand("Widget", 9.99, customerID.String())
	require.NoError(t, err)

	_, err = f.handler(commands.CheckBeforeInsert).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrDeliveryFailed)
	assert.False(t, errs.IsClientError(err))
	f.orders.AssertExpectations(t)
	f.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddFailure(t *testing.T) {
	f := newCreateOrderFixture()
	customerID := kernel.NewID()
	f.customers.On("Get", mock.Anything, customerID).Return(storedCustomer(customerID, "jane@example.com"), nil).Once()
	f.orders.On("Add", mock.Anything, mock.Anything).Return(kernel.ID{}, errors.New("disk full")).Once()

	cmd, err := commands.NewCreateOrderCommand("Widget", 9.99, customerID.String())
	require.NoError(t, err)

	_, err = f.handler(commands.CheckBeforeInsert).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrStoreFailure)
	f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

package commands_test

import (
	"testing"

	"customerorder/internal/core/application/usecases/commands"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	id := kernel.NewID()
	repo := new(MockOrderRepository)
	repo.On("Delete", mock.Anything, id).Return(int64(1), nil).Once()

	cmd, err := commands.NewDeleteOrderCommand(id.String())
	require.NoError(t, err)

	require.NoError(t, commands.NewDeleteOrderCommandHandler(repo, discardLogger()).Handle(t.Context(), cmd))
	repo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	id := kernel.NewID()
	repo := new(MockOrderRepository)
	repo.On("Delete", mock.Anything, id).Return(int64(0), nil).Once()

	cmd, err := commands.NewDeleteOrderCommand(id.String())
	require.NoError(t, err)

	err = commands.NewDeleteOrderCommandHandler(repo, discardLogger()).Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	err := commands.NewDeleteOrderCommandHandler(new(MockOrderRepository), discardLogger()).
		Handle(t.Context(), commands.DeleteOrderCommand{})
	require.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
}

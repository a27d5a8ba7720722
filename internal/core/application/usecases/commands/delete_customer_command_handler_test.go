package commands_test

import (
	"errors"
	"testing"

	"customerorder/internal/core/application/usecases/commands"
	"customerorder/internal/core/domain/model/kernel"
	"customerorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCustomerCommandHandler_Handle(t *testing.T) {
	id := kernel.NewID()

	tests := []struct {
		name    string
		deleted int64
		repoErr error
		wantErr error
	}{
		{name: "deleted", deleted: 1},
		{name: "not found", deleted: 0, wantErr: errs.ErrObjectNotFound},
		{name: "store failure", repoErr: errors.New("timeout"), wantErr: errs.ErrStoreFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCustomerRepository)
			repo.On("Delete", mock.Anything, id).Return(tt.deleted, tt.repoErr).Once()

			cmd, err := commands.NewDeleteCustomerCommand(id.String())
			require.NoError(t, err)

			err = commands.NewDeleteCustomerCommandHandler(repo, discardLogger()).Handle(t.Context(), cmd)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestNewDeleteCustomerCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteCustomerCommand("64f1c2a9")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

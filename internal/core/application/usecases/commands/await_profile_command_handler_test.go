package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

func TestAwaitProfileCommandHandler_Handle_AlreadyMaterialized(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAwaitProfileCommand(id)
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	repo.On("Exists", mock.Anything, id).Return(true, nil).Once()

	h := commands.NewAwaitProfileCommandHandler(repo, time.Second)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestAwaitProfileCommandHandler_Handle_MaterializesAfterRetries(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAwaitProfileCommand(id)
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	repo.On("Exists", mock.Anything, id).Return(false, nil).Twice()
	repo.On("Exists", mock.Anything, id).Return(true, nil).Once()

	h := commands.NewAwaitProfileCommandHandler(repo, 5*time.Second)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestAwaitProfileCommandHandler_Handle_TimesOutAsNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAwaitProfileCommand(id)
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	repo.On("Exists", mock.Anything, id).Return(false, nil)

	h := commands.NewAwaitProfileCommandHandler(repo, 500*time.Millisecond)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAwaitProfileCommandHandler_Handle_RepositoryErrorIsPermanent(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAwaitProfileCommand(id)
	require.NoError(t, err)

	dbErr := errors.New("connection refused")
	repo := new(MockProfileRepository)
	repo.On("Exists", mock.Anything, id).Return(false, dbErr).Once()

	h := commands.NewAwaitProfileCommandHandler(repo, 5*time.Second)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}

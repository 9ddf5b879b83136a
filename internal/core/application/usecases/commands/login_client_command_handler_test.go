package commands_test

import (
	"testing"

	"packtrack/internal/core/application/usecases/commands"
	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/pkg/auth"
	"packtrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func clientWithPassword(t *testing.T, id uint64, password string) *client.Client {
	t.Helper()
	hash, err := auth.NewBcryptHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)
	aggregate, err := client.RestoreClient(
		id, "Maria", "Lopez", "0801-1990-12345", "maria@example.com", hash, "+504 9999-1234")
	require.NoError(t, err)
	return aggregate
}

func TestLoginClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginClientCommand("maria@example.com", "s3cret-pass")
	require.NoError(t, err)

	account := clientWithPassword(t, 7, "s3cret-pass")
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("GetByEmail", mock.Anything, "maria@example.com").Return(account, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginClientCommandHandler(factory, auth.NewBcryptHasher(bcrypt.MinCost))
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, uint64(7), got.ID())
}

func TestLoginClientCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginClientCommand("maria@example.com", "wrong-pass")
	require.NoError(t, err)

	account := clientWithPassword(t, 7, "s3cret-pass")
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("GetByEmail", mock.Anything, "maria@example.com").Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginClientCommandHandler(factory, auth.NewBcryptHasher(bcrypt.MinCost))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestLoginClientCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginClientCommand("nobody@example.com", "s3cret-pass")
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "nobody@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginClientCommandHandler(factory, auth.NewBcryptHasher(bcrypt.MinCost))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

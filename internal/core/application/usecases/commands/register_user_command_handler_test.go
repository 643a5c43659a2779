package commands_test

import (
	"testing"

	"foodrun/internal/core/application/usecases/commands"
	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/pkg/errs"
	"foodrun/internal/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterUserCommand("bob", "hunter2", "0129876543", account.RoleDriver)
	require.NoError(t, err)
	assert.Equal(t, "bob", cmd.Name())
	assert.Equal(t, "hunter2", cmd.Password())
	assert.Equal(t, "0129876543", cmd.Phone())
	assert.Equal(t, account.RoleDriver, cmd.Role())
}

func TestNewRegisterUserCommand_MissingFields(t *testing.T) {
	_, err := commands.NewRegisterUserCommand("", "", "", account.RoleCustomer)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrPasswordIsRequired)
	assert.ErrorIs(t, err, commands.ErrPhoneIsRequired)
}

func TestNewRegisterUserCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewRegisterUserCommand("bob", "hunter2", "0129876543", account.RoleUnknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRegisterUserCommandHandler_Handle_HashesPassword(t *testing.T) {
	ctx := t.Context()

	users := new(MockUserRepository)
	uow := new(MockUserUoW)
	var added *account.User
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*account.User)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	cmd, err := commands.NewRegisterUserCommand("bob", "hunter2", "0129876543", account.RoleDriver)
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, added)
	assert.Equal(t, "bob", added.Name())
	assert.Equal(t, account.RoleDriver, added.Role())
	assert.NotEqual(t, "hunter2", added.PasswordHash())
	assert.True(t, security.VerifyPassword("hunter2", added.PasswordHash()))

	users.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_DuplicateName(t *testing.T) {
	ctx := t.Context()

	users := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).
			Return(errs.NewValueIsInvalidError("name")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	cmd, err := commands.NewRegisterUserCommand("bob", "hunter2", "0129876543", account.RoleCustomer)
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

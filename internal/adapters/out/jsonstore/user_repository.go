package jsonstore

import (
	"context"

	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/pkg/errs"
)

type userRepository struct {
	uow *UnitOfWork
}

func (r *userRepository) Add(_ context.Context, user *account.User) error {
	if r.uow.state == nil {
		return ErrNoActiveTransaction
	}
	if err := user.Validate(); err != nil {
		return err
	}

	if _, exists := r.uow.state.users[user.Name()]; exists {
		return errs.NewValueIsInvalidError("name")
	}

	r.uow.state.users[user.Name()] = userFromDomain(user)
	return nil
}

func (r *userRepository) Get(_ context.Context, name string) (*account.User, error) {
	if r.uow.state == nil {
		return nil, ErrNoActiveTransaction
	}

	dto, exists := r.uow.state.users[name]
	if !exists {
		return nil, errs.NewObjectNotFoundError("user", name)
	}

	return userToDomain(name, dto)
}

package queries

import (
	"errors"

	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/pkg/guard"
)

var (
	ErrLoginQueryIsNotConstructed = errors.New(
		"LoginQuery must be created via NewLoginQuery constructor",
	)

	ErrNameIsRequired     = errors.New("name is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// LoginQuery checks a name, password and role against the credential store.
// Modeled as a query because a login attempt changes nothing durable;
// sessions are issued by the transport layer on success.
type LoginQuery struct {
	name     string
	password string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login check for the given credentials.
func NewLoginQuery(name, password string, role account.Role) (LoginQuery, error) {
	q := LoginQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setName(name),
		q.setPassword(password),
		q.setRole(role),
	); err != nil {
		return LoginQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Name returns the login name.
func (q LoginQuery) Name() string {
	return q.name
}

// Password returns the clear-text password to verify.
func (q LoginQuery) Password() string {
	return q.password
}

// Role returns the role the user claims to hold.
func (q LoginQuery) Role() account.Role {
	return q.role
}

func (q *LoginQuery) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	q.name = name
	return nil
}

func (q *LoginQuery) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	q.password = password
	return nil
}

func (q *LoginQuery) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	q.role = role
	return nil
}

// LoginResponse identifies the authenticated user.
type LoginResponse struct {
	Name string
	Role account.Role
}

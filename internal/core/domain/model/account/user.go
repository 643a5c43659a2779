package account

import (
	"errors"
	"strings"
	"unicode"

	"foodrun/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is one registered account: a unique name, a bcrypt password hash, a
// contact phone and the role the user registered under. A name registers
// exactly once; roles never change after registration.
type User struct {
	// name is the unique username
	name string

	// passwordHash is the bcrypt hash of the user's password
	passwordHash string

	// phone is the contact phone number, digits as entered
	phone string

	// role is the marketplace side the user acts on
	role Role

	// isConstructed ensures the user was created via NewUser
	isConstructed bool
}

// NewUser creates a User from registration data. The password must already be
// hashed; this constructor never sees a plain-text password.
func NewUser(name, passwordHash, phone string, role Role) (*User, error) {
	user := &User{isConstructed: true}

	if err := errors.Join(
		user.setName(name),
		user.setPasswordHash(passwordHash),
		user.setPhone(phone),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// Name returns the unique username.
func (u *User) Name() string {
	return u.name
}

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Phone returns the contact phone number as entered.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the marketplace side the user acts on.
func (u *User) Role() Role {
	return u.role
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.name = name
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	u.phone = phone
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// FormatPhone renders a phone number for display as "xxx-xxxxxxx", keeping
// only the digits. Numbers shorter than four digits are returned unchanged.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if len(d) < 4 {
		return phone
	}

	return d[:3] + "-" + d[3:]
}

package auth

import (
	"errors"

	"ezrent/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration carries validated signup input before the password is hashed.
type Registration struct {
	Name        user.Name
	Credentials Credentials
	Role        user.Role
}

func NewRegistration(name, email, password, role string) (Registration, error) {
	n, err := user.NewName(name)
	if err != nil {
		return Registration{}, err
	}
	creds, err := NewCredentials(email, password)
	if err != nil {
		return Registration{}, err
	}
	r, err := user.NewRole(role)
	if err != nil {
		return Registration{}, err
	}
	return Registration{Name: n, Credentials: creds, Role: r}, nil
}

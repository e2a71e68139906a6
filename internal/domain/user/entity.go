package user

import (
	"time"

	"github.com/google/uuid"
)

// User is both a customer and an owner account; the role decides which side of a booking it may act on.
type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(id uuid.UUID, name Name, email Email, passwordHash string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ChangePassword is the only mutation a user account allows.
func (u *User) ChangePassword(newHash string, now time.Time) {
	u.passwordHash = newHash
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

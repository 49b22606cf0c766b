package user

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no user or role matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a create collides with an existing
	// normalized email.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store is the narrow credential-store boundary the auth service depends on.
// It hides the ORM so the service can be tested against an in-memory fake.
type Store interface {
	// FindByEmail looks a user up by case-insensitive email. Returns
	// ErrNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// CreateWithPassword persists a new user, hashing the plaintext password
	// internally. The plaintext is never stored.
	CreateWithPassword(ctx context.Context, u *User, password string) error

	// GetRoles returns the names of the roles the user belongs to.
	GetRoles(ctx context.Context, u *User) ([]string, error)

	// AddToRole adds the user to the named role.
	AddToRole(ctx context.Context, u *User, roleName string) error

	// FindRoleByName looks a role up by case-insensitive name. Returns
	// ErrNotFound when no such role exists.
	FindRoleByName(ctx context.Context, name string) (*Role, error)

	// ListUsers returns every user record.
	ListUsers(ctx context.Context) ([]User, error)

	// RecordSignIn updates the user's last-login marker. Callers treat
	// failures as non-fatal.
	RecordSignIn(ctx context.Context, userID uint) error
}

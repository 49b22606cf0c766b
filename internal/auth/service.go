package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/adeyemio/simple-auth-api/internal/auth/password"
	"github.com/adeyemio/simple-auth-api/internal/user"
)

var (
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("username or password is incorrect")

	// ErrUnknownRole means the requested role does not exist.
	ErrUnknownRole = errors.New("role does not exist")

	// ErrCreateFailed means the user record could not be created.
	ErrCreateFailed = errors.New("failed to create user")

	// ErrRoleAssignFailed means the user was created but could not be added
	// to the requested role. The unassigned record is left in place for
	// manual reconciliation.
	ErrRoleAssignFailed = errors.New("failed to assign user a role")
)

// SignUp carries a validated registration request. Password equality with
// its confirmation is enforced at the request boundary, before this type is
// constructed.
type SignUp struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	UserRole    string
}

// Service orchestrates credential verification, registration and role
// lookups against the credential store.
type Service struct {
	store user.Store
}

func NewService(store user.Store) *Service {
	return &Service{store: store}
}

// Authenticate verifies the credential pair and returns the user with its
// role names. Unknown users and wrong passwords both return
// ErrInvalidCredentials; a burn hash comparison keeps the two paths at the
// same cost.
func (s *Service) Authenticate(ctx context.Context, username, plaintext string) (*user.User, []string, error) {
	u, err := s.store.FindByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// Burn a hash compare so this path costs the same as a real one.
			password.Verify(password.DummyHash, plaintext)
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("look up user: %w", err)
	}

	if !password.Verify(u.PasswordHash, plaintext) {
		return nil, nil, ErrInvalidCredentials
	}

	// Best effort: a failed marker update must not fail the login.
	if err := s.store.RecordSignIn(ctx, u.ID); err != nil {
		log.Printf("Failed to record sign-in for user %d: %v", u.ID, err)
	}

	roles, err := s.store.GetRoles(ctx, u)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch roles: %w", err)
	}

	return u, roles, nil
}

// Register creates a user and adds it to the requested role. Creation and
// role assignment are two store calls without a surrounding transaction: if
// the second fails the record stays behind unassigned, and the distinct
// ErrRoleAssignFailed tells operators which case they are looking at.
func (s *Service) Register(ctx context.Context, signup SignUp) error {
	if _, err := s.store.FindRoleByName(ctx, signup.UserRole); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			log.Printf("Role with name %q does not exist", signup.UserRole)
			return ErrUnknownRole
		}
		return fmt.Errorf("look up role: %w", err)
	}

	u := &user.User{
		FirstName:          signup.FirstName,
		LastName:           signup.LastName,
		Email:              signup.Email,
		NormalizedEmail:    strings.ToUpper(signup.Email),
		UserName:           signup.Email,
		NormalizedUserName: strings.ToUpper(signup.Email),
		PhoneNumber:        signup.PhoneNumber,
		SecurityStamp:      uuid.NewString(),
		EmailConfirmed:     true,
		PhoneConfirmed:     true,
		TwoFactorEnabled:   false,
		LockoutEnabled:     false,
	}

	if err := s.store.CreateWithPassword(ctx, u, signup.Password); err != nil {
		log.Printf("Failed to create user %s: %v", signup.Email, err)
		return fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	if err := s.store.AddToRole(ctx, u, signup.UserRole); err != nil {
		log.Printf("Couldn't assign user %s the %s role: %v", signup.Email, signup.UserRole, err)
		return fmt.Errorf("%w: %v", ErrRoleAssignFailed, err)
	}

	return nil
}

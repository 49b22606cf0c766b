package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adeyemio/simple-auth-api/internal/auth"
	"github.com/adeyemio/simple-auth-api/internal/auth/password"
	"github.com/adeyemio/simple-auth-api/internal/user"
)

// fakeStore is an in-memory user.Store for exercising the auth service
// without a database.
type fakeStore struct {
	users      map[string]*user.User // keyed by normalized email
	roles      map[string]*user.Role // keyed by normalized name
	userRoles  map[uint][]string
	nextID     uint
	signIns    []uint
	failAssign bool
	failSignIn bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[string]*user.User),
		roles: map[string]*user.Role{
			"ADMIN": {ID: 1, Name: "Admin", NormalizedName: "ADMIN"},
			"USER":  {ID: 2, Name: "User", NormalizedName: "USER"},
		},
		userRoles: make(map[uint][]string),
	}
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (*user.User, error) {
	u, ok := f.users[strings.ToUpper(email)]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) CreateWithPassword(_ context.Context, u *user.User, plaintext string) error {
	if _, exists := f.users[u.NormalizedEmail]; exists {
		return user.ErrDuplicateEmail
	}
	hash, err := password.Hash(plaintext)
	if err != nil {
		return err
	}
	f.nextID++
	u.ID = f.nextID
	u.PasswordHash = hash
	f.users[u.NormalizedEmail] = u
	return nil
}

func (f *fakeStore) GetRoles(_ context.Context, u *user.User) ([]string, error) {
	return f.userRoles[u.ID], nil
}

func (f *fakeStore) AddToRole(_ context.Context, u *user.User, roleName string) error {
	if f.failAssign {
		return errors.New("role assignment rejected")
	}
	role, ok := f.roles[strings.ToUpper(roleName)]
	if !ok {
		return user.ErrNotFound
	}
	f.userRoles[u.ID] = append(f.userRoles[u.ID], role.Name)
	return nil
}

func (f *fakeStore) FindRoleByName(_ context.Context, name string) (*user.Role, error) {
	role, ok := f.roles[strings.ToUpper(name)]
	if !ok {
		return nil, user.ErrNotFound
	}
	return role, nil
}

func (f *fakeStore) ListUsers(_ context.Context) ([]user.User, error) {
	users := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeStore) RecordSignIn(_ context.Context, userID uint) error {
	if f.failSignIn {
		return errors.New("marker update failed")
	}
	f.signIns = append(f.signIns, userID)
	return nil
}

func signUpFixture() auth.SignUp {
	return auth.SignUp{
		FirstName:   "Ada",
		LastName:    "Obi",
		Email:       "ada@test.ng",
		Password:    "Passw0rd",
		PhoneNumber: "08031234567",
		UserRole:    "User",
	}
}

func TestService_RegisterAndAuthenticate(t *testing.T) {
	// Arrange
	store := newFakeStore()
	service := auth.NewService(store)
	ctx := context.Background()

	// Act
	err := service.Register(ctx, signUpFixture())
	assert.NoError(t, err)

	u, roles, err := service.Authenticate(ctx, "ada@test.ng", "Passw0rd")

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, u)
	assert.Equal(t, "ada@test.ng", u.Email)
	assert.Equal(t, []string{"User"}, roles)
	assert.Equal(t, []uint{u.ID}, store.signIns, "successful login records a sign-in marker")
}

func TestService_Register_NormalizesAndConfirms(t *testing.T) {
	store := newFakeStore()
	service := auth.NewService(store)

	err := service.Register(context.Background(), signUpFixture())
	assert.NoError(t, err)

	u := store.users["ADA@TEST.NG"]
	assert.NotNil(t, u)
	assert.Equal(t, "ada@test.ng", u.UserName, "username defaults to the email")
	assert.Equal(t, "ADA@TEST.NG", u.NormalizedEmail)
	assert.Equal(t, "ADA@TEST.NG", u.NormalizedUserName)
	assert.True(t, u.EmailConfirmed)
	assert.True(t, u.PhoneConfirmed)
	assert.False(t, u.TwoFactorEnabled)
	assert.False(t, u.LockoutEnabled)
	assert.NotEmpty(t, u.SecurityStamp)
	assert.NotEqual(t, "Passw0rd", u.PasswordHash, "plaintext is never stored")
}

func TestService_Authenticate_CaseInsensitiveEmail(t *testing.T) {
	store := newFakeStore()
	service := auth.NewService(store)
	ctx := context.Background()
	assert.NoError(t, service.Register(ctx, signUpFixture()))

	_, _, err := service.Authenticate(ctx, "ADA@Test.NG", "Passw0rd")
	assert.NoError(t, err)
}

func TestService_Authenticate_GenericFailure(t *testing.T) {
	store := newFakeStore()
	service := auth.NewService(store)
	ctx := context.Background()
	assert.NoError(t, service.Register(ctx, signUpFixture()))

	// Wrong password and unknown user must be indistinguishable.
	_, _, wrongPass := service.Authenticate(ctx, "ada@test.ng", "wrong")
	_, _, unknown := service.Authenticate(ctx, "nobody@test.ng", "Passw0rd")

	assert.ErrorIs(t, wrongPass, auth.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, auth.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
	assert.Empty(t, store.signIns, "failed logins never record a sign-in marker")
}

func TestService_Authenticate_SignInMarkerBestEffort(t *testing.T) {
	store := newFakeStore()
	store.failSignIn = true
	service := auth.NewService(store)
	ctx := context.Background()
	assert.NoError(t, service.Register(ctx, signUpFixture()))

	// A failing marker update must not fail the login.
	u, roles, err := service.Authenticate(ctx, "ada@test.ng", "Passw0rd")
	assert.NoError(t, err)
	assert.NotNil(t, u)
	assert.Equal(t, []string{"User"}, roles)
}

func TestService_Register_UnknownRole(t *testing.T) {
	store := newFakeStore()
	service := auth.NewService(store)

	signup := signUpFixture()
	signup.UserRole = "Wizard"
	err := service.Register(context.Background(), signup)

	assert.ErrorIs(t, err, auth.ErrUnknownRole)
	assert.Empty(t, store.users, "no user record is created when the role is unknown")
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	service := auth.NewService(store)
	ctx := context.Background()
	assert.NoError(t, service.Register(ctx, signUpFixture()))

	err := service.Register(ctx, signUpFixture())
	assert.ErrorIs(t, err, auth.ErrCreateFailed)
	assert.Len(t, store.users, 1, "duplicate registration never overwrites")
}

func TestService_Register_RoleAssignFailed(t *testing.T) {
	store := newFakeStore()
	store.failAssign = true
	service := auth.NewService(store)

	err := service.Register(context.Background(), signUpFixture())

	// Distinct from create failure, and the unassigned record stays behind.
	assert.ErrorIs(t, err, auth.ErrRoleAssignFailed)
	assert.NotErrorIs(t, err, auth.ErrCreateFailed)
	assert.Len(t, store.users, 1)
	assert.Empty(t, store.userRoles)
}

func TestService_RoleChangeDoesNotAffectIssuedToken(t *testing.T) {
	store := newFakeStore()
	service := auth.NewService(store)
	tokens := auth.NewJWTService("secret", "iss", "aud", time.Hour)
	ctx := context.Background()
	assert.NoError(t, service.Register(ctx, signUpFixture()))

	u, roles, err := service.Authenticate(ctx, "ada@test.ng", "Passw0rd")
	assert.NoError(t, err)
	token, err := tokens.GenerateToken(u, roles)
	assert.NoError(t, err)

	// Grant another role after issuance; the token keeps the snapshot.
	assert.NoError(t, store.AddToRole(ctx, u, "Admin"))

	claims, err := tokens.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"User"}, claims.Roles)
}

package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adeyemio/simple-auth-api/internal/auth/password"
)

// GormStore implements Store on top of a gorm-managed PostgreSQL database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).
		Where("normalized_email = ?", strings.ToUpper(email)).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) CreateWithPassword(ctx context.Context, u *User, plaintext string) error {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return err
	}
	u.PasswordHash = hash

	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *GormStore) GetRoles(ctx context.Context, u *User) ([]string, error) {
	var roles []Role
	err := s.db.WithContext(ctx).
		Model(u).
		Association("Roles").
		Find(&roles)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *GormStore) AddToRole(ctx context.Context, u *User, roleName string) error {
	role, err := s.FindRoleByName(ctx, roleName)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(u).Association("Roles").Append(role)
}

func (s *GormStore) FindRoleByName(ctx context.Context, name string) (*Role, error) {
	var role Role
	err := s.db.WithContext(ctx).
		Where("normalized_name = ?", strings.ToUpper(name)).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (s *GormStore) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) RecordSignIn(ctx context.Context, userID uint) error {
	now := time.Now().UTC()
	return s.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", userID).
		Update("last_login_at", now).Error
}

// Migrate creates the users, roles and user_roles tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&User{}, &Role{})
}

// Seed inserts the fixed role set and the bootstrap administrator account if
// they are not present. Safe to run on every startup.
func (s *GormStore) Seed(adminEmail, adminPassword string) error {
	roles := []Role{
		{ID: 1, Name: "Admin", NormalizedName: "ADMIN"},
		{ID: 2, Name: "User", NormalizedName: "USER"},
	}
	for _, role := range roles {
		if err := s.db.Where(Role{NormalizedName: role.NormalizedName}).
			FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", role.Name, err)
		}
	}

	var count int64
	if err := s.db.Model(&User{}).
		Where("normalized_email = ?", strings.ToUpper(adminEmail)).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := password.Hash(adminPassword)
	if err != nil {
		return err
	}

	admin := &User{
		FirstName:          "Adedeji",
		LastName:           "Adeyemi",
		Email:              adminEmail,
		NormalizedEmail:    strings.ToUpper(adminEmail),
		UserName:           adminEmail,
		NormalizedUserName: strings.ToUpper(adminEmail),
		PhoneNumber:        "08031234567",
		PasswordHash:       hash,
		SecurityStamp:      uuid.NewString(),
		EmailConfirmed:     true,
		PhoneConfirmed:     true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	var adminRole Role
	if err := s.db.Where("normalized_name = ?", "ADMIN").First(&adminRole).Error; err != nil {
		return err
	}
	if err := s.db.Model(admin).Association("Roles").Append(&adminRole); err != nil {
		return err
	}

	log.Printf("Seeded administrator account %s", adminEmail)
	return nil
}

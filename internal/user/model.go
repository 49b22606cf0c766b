package user

import "time"

// User is the credential record persisted in the Users table.
// PasswordHash and SecurityStamp never leave the service; use ToDTO for
// anything that goes over the wire.
type User struct {
	ID                 uint   `gorm:"primaryKey"`
	FirstName          string `gorm:"type:varchar(100);not null"`
	LastName           string `gorm:"type:varchar(100);not null"`
	Email              string `gorm:"type:varchar(100);not null"`
	NormalizedEmail    string `gorm:"type:varchar(100);uniqueIndex;not null"`
	UserName           string `gorm:"type:varchar(100);not null"`
	NormalizedUserName string `gorm:"type:varchar(100);not null"`
	PhoneNumber        string `gorm:"type:varchar(15);not null"`
	PasswordHash       string `gorm:"column:password;type:varchar(250)"`
	SecurityStamp      string `gorm:"type:varchar(250)"`
	EmailConfirmed     bool
	PhoneConfirmed     bool
	TwoFactorEnabled   bool
	LockoutEnabled     bool
	LastLoginAt        *time.Time
	Roles              []Role `gorm:"many2many:user_roles;"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (User) TableName() string {
	return "users"
}

// Role is a named group users can belong to. The seed set is Admin and User.
type Role struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"type:varchar(50);not null"`
	NormalizedName string `gorm:"type:varchar(50);uniqueIndex;not null"`
}

func (Role) TableName() string {
	return "roles"
}

// DTO is the public-safe projection of a User.
type DTO struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ToDTO projects a User field by field. Declared statically on purpose so a
// new sensitive column can never leak through a generic mapper.
func ToDTO(u User) DTO {
	return DTO{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		UserName:    u.UserName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

// ToDTOs projects a slice of users.
func ToDTOs(users []User) []DTO {
	dtos := make([]DTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, ToDTO(u))
	}
	return dtos
}

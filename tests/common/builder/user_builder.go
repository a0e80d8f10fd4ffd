//go:build unit || e2e

package builder

import (
	"time"

	"badminton-club/internal/domain/user"
	reqdto "badminton-club/internal/handler/dto/request"
	"badminton-club/internal/pkg/password"
	"badminton-club/internal/usecase/queries"

	"github.com/google/uuid"
)

var fixedTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type UserBuilder struct {
	ID             uuid.UUID
	Email          string
	Password       string
	PasswordHash   string
	FirstName      string
	LastName       string
	Phone          string
	Role           string
	MembershipType string
	SkillLevel     string
	IsActive       bool
	CreatedAt      time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:             uuid.New(),
		Email:          "player@example.com",
		Password:       "password123",
		FirstName:      "Jane",
		LastName:       "Smith",
		Phone:          "0412345678",
		Role:           "member",
		MembershipType: "basic",
		SkillLevel:     "beginner",
		IsActive:       true,
		CreatedAt:      fixedTime,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(u.FirstName, u.LastName)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(u.Phone)
	if err != nil {
		return nil, err
	}
	membership, err := user.NewMembershipType(u.MembershipType)
	if err != nil {
		return nil, err
	}
	skill, err := user.NewSkillLevel(u.SkillLevel)
	if err != nil {
		return nil, err
	}

	hash := u.PasswordHash
	if hash == "" {
		hash, err = password.HashPassword(u.Password)
		if err != nil {
			return nil, err
		}
	}

	return user.ReconstructUser(
		u.ID, email, hash, name, phone, role, membership,
		u.CreatedAt.AddDate(1, 0, 0), skill, u.IsActive,
		u.CreatedAt, u.CreatedAt,
	), nil
}

// MustBuildDomain is for fixtures whose fields are known to be valid.
func (u *UserBuilder) MustBuildDomain() *user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usr
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return queries.NewUserView(u.MustBuildDomain())
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		Password:       u.Password,
		Phone:          u.Phone,
		MembershipType: u.MembershipType,
		SkillLevel:     u.SkillLevel,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPassword(pw string) *UserBuilder {
	u.Password = pw
	u.PasswordHash = ""
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

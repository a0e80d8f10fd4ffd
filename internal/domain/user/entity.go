package user

import (
	"time"

	"github.com/google/uuid"
)

const membershipTerm = 1

type User struct {
	id               uuid.UUID
	email            Email
	passwordHash     string
	name             Name
	phone            Phone
	role             Role
	membershipType   MembershipType
	membershipExpiry time.Time
	skillLevel       SkillLevel
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewMember registers a club member. Membership runs for one year from now.
func NewMember(
	email Email,
	passwordHash string,
	name Name,
	phone Phone,
	membershipType MembershipType,
	skillLevel SkillLevel,
	now time.Time,
) *User {
	return &User{
		id:               uuid.New(),
		email:            email,
		passwordHash:     passwordHash,
		name:             name,
		phone:            phone,
		role:             RoleMember,
		membershipType:   membershipType,
		membershipExpiry: now.AddDate(membershipTerm, 0, 0),
		skillLevel:       skillLevel,
		isActive:         true,
		createdAt:        now,
		updatedAt:        now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	name Name,
	phone Phone,
	role Role,
	membershipType MembershipType,
	membershipExpiry time.Time,
	skillLevel SkillLevel,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:               id,
		email:            email,
		passwordHash:     passwordHash,
		name:             name,
		phone:            phone,
		role:             role,
		membershipType:   membershipType,
		membershipExpiry: membershipExpiry,
		skillLevel:       skillLevel,
		isActive:         isActive,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

type ProfileChanges struct {
	Name       *Name
	Phone      *Phone
	SkillLevel *SkillLevel
}

func (c ProfileChanges) IsEmpty() bool {
	return c.Name == nil && c.Phone == nil && c.SkillLevel == nil
}

func (u *User) ApplyProfile(changes ProfileChanges, now time.Time) {
	if changes.Name != nil {
		u.name = *changes.Name
	}
	if changes.Phone != nil {
		u.phone = *changes.Phone
	}
	if changes.SkillLevel != nil {
		u.skillLevel = *changes.SkillLevel
	}
	u.updatedAt = now
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) ID() uuid.UUID                  { return u.id }
func (u *User) Email() Email                   { return u.email }
func (u *User) PasswordHash() string           { return u.passwordHash }
func (u *User) Name() Name                     { return u.name }
func (u *User) Phone() Phone                   { return u.phone }
func (u *User) Role() Role                     { return u.role }
func (u *User) MembershipType() MembershipType { return u.membershipType }
func (u *User) MembershipExpiry() time.Time    { return u.membershipExpiry }
func (u *User) SkillLevel() SkillLevel         { return u.skillLevel }
func (u *User) IsActive() bool                 { return u.isActive }
func (u *User) CreatedAt() time.Time           { return u.createdAt }
func (u *User) UpdatedAt() time.Time           { return u.updatedAt }

package converter

import (
	"fmt"

	"badminton-club/internal/domain/user"
	"badminton-club/internal/infra/kvstore"
	"badminton-club/internal/infra/repository/record"

	"github.com/google/uuid"
)

func UserToRecord(u *user.User) record.User {
	return record.User{
		Keys: kvstore.Keys{
			PK:     record.UserKey(u.ID()),
			SK:     record.UserProfileSK,
			GSI1PK: record.EmailKey(u.Email().Value()),
			GSI1SK: record.UserKey(u.ID()),
		},
		EntityType:       record.EntityUser,
		ID:               u.ID().String(),
		Email:            u.Email().Value(),
		PasswordHash:     u.PasswordHash(),
		FirstName:        u.Name().First(),
		LastName:         u.Name().Last(),
		Phone:            u.Phone().Value(),
		Role:             u.Role().String(),
		MembershipType:   u.MembershipType().String(),
		MembershipExpiry: u.MembershipExpiry(),
		SkillLevel:       u.SkillLevel().String(),
		IsActive:         u.IsActive(),
		CreatedAt:        u.CreatedAt(),
		UpdatedAt:        u.UpdatedAt(),
	}
}

func EmailClaimToRecord(u *user.User) record.EmailClaim {
	key := record.EmailKey(u.Email().Value())
	return record.EmailClaim{
		Keys:       kvstore.Keys{PK: key, SK: key},
		EntityType: record.EntityEmailClaim,
		UserID:     u.ID().String(),
	}
}

// ProfileFields lists the attributes a profile update may change.
func ProfileFields(u *user.User) map[string]any {
	return map[string]any{
		"firstName":  u.Name().First(),
		"lastName":   u.Name().Last(),
		"phone":      u.Phone().Value(),
		"skillLevel": u.SkillLevel().String(),
		"updatedAt":  u.UpdatedAt(),
	}
}

func UserToDomain(r record.User) (*user.User, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("user id %q: %w", r.ID, err)
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.ID, err)
	}
	name, err := user.NewName(r.FirstName, r.LastName)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.ID, err)
	}
	phone, err := user.NewPhone(r.Phone)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.ID, err)
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.ID, err)
	}
	membership, err := user.NewMembershipType(r.MembershipType)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.ID, err)
	}
	skill, err := user.NewSkillLevel(r.SkillLevel)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", r.ID, err)
	}

	return user.ReconstructUser(
		id,
		email,
		r.PasswordHash,
		name,
		phone,
		role,
		membership,
		r.MembershipExpiry,
		skill,
		r.IsActive,
		r.CreatedAt, r.UpdatedAt,
	), nil
}

package request

import (
	"badminton-club/internal/domain/user"
)

type RegisterRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6,max=72"`
	Phone          string `json:"phone" binding:"required,min=10"`
	MembershipType string `json:"membershipType,omitempty" binding:"omitempty,oneof=basic premium student family"`
	SkillLevel     string `json:"skillLevel,omitempty" binding:"omitempty,oneof=beginner intermediate advanced"`
}

type Registration struct {
	Email          user.Email
	Password       user.Password
	Name           user.Name
	Phone          user.Phone
	MembershipType user.MembershipType
	SkillLevel     user.SkillLevel
}

func (r *RegisterRequest) ToDomain() (Registration, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return Registration{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return Registration{}, err
	}
	name, err := user.NewName(r.FirstName, r.LastName)
	if err != nil {
		return Registration{}, err
	}
	phone, err := user.NewPhone(r.Phone)
	if err != nil {
		return Registration{}, err
	}
	membership, err := user.NewMembershipType(r.MembershipType)
	if err != nil {
		return Registration{}, err
	}
	skill, err := user.NewSkillLevel(r.SkillLevel)
	if err != nil {
		return Registration{}, err
	}

	return Registration{
		Email:          email,
		Password:       password,
		Name:           name,
		Phone:          phone,
		MembershipType: membership,
		SkillLevel:     skill,
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

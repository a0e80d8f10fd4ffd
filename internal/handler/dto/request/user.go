package request

import (
	"badminton-club/internal/domain/user"
)

// UpdateProfileRequest only touches the fields that are present.
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	SkillLevel *string `json:"skillLevel,omitempty"`
}

func (r *UpdateProfileRequest) ToDomain(current user.Name) (user.ProfileChanges, error) {
	var changes user.ProfileChanges

	if r.FirstName != nil || r.LastName != nil {
		first, last := current.First(), current.Last()
		if r.FirstName != nil {
			first = *r.FirstName
		}
		if r.LastName != nil {
			last = *r.LastName
		}
		name, err := user.NewName(first, last)
		if err != nil {
			return user.ProfileChanges{}, err
		}
		changes.Name = &name
	}

	if r.Phone != nil {
		phone, err := user.NewPhone(*r.Phone)
		if err != nil {
			return user.ProfileChanges{}, err
		}
		changes.Phone = &phone
	}

	if r.SkillLevel != nil {
		if *r.SkillLevel == "" {
			return user.ProfileChanges{}, user.ErrInvalidSkillLevel
		}
		level, err := user.NewSkillLevel(*r.SkillLevel)
		if err != nil {
			return user.ProfileChanges{}, err
		}
		changes.SkillLevel = &level
	}

	return changes, nil
}

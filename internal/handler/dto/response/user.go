package response

import (
	"time"

	"badminton-club/internal/usecase/queries"
)

type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	MembershipType   string    `json:"membershipType"`
	MembershipExpiry time.Time `json:"membershipExpiry"`
	SkillLevel       string    `json:"skillLevel"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromUserView(v *queries.UserView) UserResponse {
	var out UserResponse
	copyView(&out, v)
	return out
}

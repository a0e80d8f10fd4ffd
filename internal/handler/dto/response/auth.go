package response

import (
	"badminton-club/internal/usecase/commands"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) AuthResponse {
	return AuthResponse{
		Token: r.Token,
		User:  FromUserView(r.User),
	}
}

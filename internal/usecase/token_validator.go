package usecase

import (
	"badminton-club/internal/domain/user"
	"badminton-club/internal/pkg/jwt"
	"badminton-club/internal/usecase/shared"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Caller, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Caller, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Caller{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Caller{}, err
	}

	return shared.Caller{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}

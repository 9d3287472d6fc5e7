package usecase

import (
	"gym-booking/internal/domain/user"
	"gym-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity is who a verified access token speaks for.
type Identity struct {
	UserID uuid.UUID
	Role   user.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, Role: role}, nil
}

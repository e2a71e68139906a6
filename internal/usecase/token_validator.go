package usecase

import (
	"ezrent/internal/domain/user"
	"ezrent/internal/pkg/jwt"
	"ezrent/internal/usecase/shared"
)

// TokenValidator turns a bearer or cookie token into the caller identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwtService: jwtService}
}

func (t *tokenValidator) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}
	// sub and user_id are written together; a mismatch means the token was not ours
	if claims.Subject != claims.UserID.String() {
		return shared.Actor{}, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, jwt.ErrInvalidToken
	}
	return shared.Actor{UserID: claims.UserID, Role: role}, nil
}

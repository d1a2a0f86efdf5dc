package usecase

import (
	"mynbala-backend/internal/pkg/authctx"
	"mynbala-backend/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (authctx.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (authctx.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return authctx.Identity{}, err
	}
	return authctx.Identity{
		UserID: claims.UserID,
		Phone:  claims.Phone,
		Role:   claims.Role,
	}, nil
}

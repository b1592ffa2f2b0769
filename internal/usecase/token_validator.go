package usecase

import (
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the caller identity used by billing access rules.
type TokenValidator interface {
	Authenticate(tokenString string) (user.Actor, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) Authenticate(tokenString string) (user.Actor, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}
	return claims.Actor()
}

package token

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service issues and verifies the bearer tokens that guard the ingest API.
// Callers are other services (the upstream extraction pipeline, operator
// tooling), not humans, so there is only one token shape.
type Service interface {
	GenerateServiceToken(subject string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type tokenService struct {
	expiration string
	tokenAuth  *jwtauth.JWTAuth
}

func NewService(secretKey string, expiration string) Service {
	return &tokenService{
		expiration: expiration,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (s *tokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.tokenAuth
}

func (s *tokenService) GenerateServiceToken(subject string) (string, int64, error) {
	expDuration, err := time.ParseDuration(s.expiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	_, tokenString, err := s.tokenAuth.Encode(map[string]interface{}{
		"sub":  subject,
		"type": "service",
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

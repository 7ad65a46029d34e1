package model

import "github.com/google/uuid"

// TokenClaims carries the identity embedded in an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenManager issues and validates self-contained access tokens.
type TokenManager interface {
	Generate(userID uuid.UUID, email string) (string, error)
	Parse(token string) (TokenClaims, error)
}

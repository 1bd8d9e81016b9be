package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	Email  string    `json:"email"`
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed session tokens.
// Verification is stateless: there is no revocation list.
type TokenService interface {
	// GenerateToken signs a token asserting the given identity.
	GenerateToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken verifies the signature (and expiry, when present) and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}

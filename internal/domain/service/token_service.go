// Package service declares domain-level service contracts implemented by
// the infrastructure layer.
package service

import (
	"github.com/google/uuid"
)

// AccessClaims are the verified claims of a Supabase access token that the
// rest of the application cares about.
type AccessClaims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// TokenService validates Supabase-issued access tokens. Token issuance is
// handled entirely by the Supabase auth service; this side only verifies.
type TokenService interface {
	// ValidateAccessToken verifies the signature and expiry of an access
	// token and extracts its claims.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)
}

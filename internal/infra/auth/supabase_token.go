// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"localia/config"
	"localia/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// supabaseTokenService verifies access tokens issued by the Supabase auth
// service. Tokens are HS256-signed with the project JWT secret; this side
// never issues tokens, only validates them.
type supabaseTokenService struct {
	secret []byte
	issuer string
}

type supabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// NewSupabaseTokenService is the constructor for supabaseTokenService.
func NewSupabaseTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Supabase == nil || cfg.Supabase.JWTSecret == "" {
		return nil, errors.New("supabase jwt secret must be provided")
	}

	return &supabaseTokenService{
		secret: []byte(cfg.Supabase.JWTSecret),
		issuer: cfg.Supabase.Issuer,
	}, nil
}

// ValidateAccessToken verifies the signature, expiry, and issuer of an
// access token and extracts the claims the application cares about.
func (s *supabaseTokenService) ValidateAccessToken(tokenString string) (*service.AccessClaims, error) {
	var claims supabaseClaims

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a user ID")
	}

	return &service.AccessClaims{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}

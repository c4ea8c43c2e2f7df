package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SignUpInput registers a new account. Role defaults to client.
type SignUpInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
}

// AuthSession is the token pair returned to signed-in callers.
type AuthSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// AuthUser is the signed-in caller's profile view, combining the auth
// provider's record with the local profile row when one exists.
type AuthUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role,omitempty"`
}

// SignUpResult carries the created user. There is no session yet; the
// account must confirm its email first.
type SignUpResult struct {
	User    *AuthUser `json:"user"`
	Message string    `json:"message"`
}

// SignInResult pairs the user with an issued session.
type SignInResult struct {
	User    *AuthUser    `json:"user"`
	Session *AuthSession `json:"session"`
}

// AuthUsecase covers account registration, sessions, and password
// recovery against the external auth provider.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	RefreshSession(ctx context.Context, refreshToken string) (*SignInResult, error)

	// RequestPasswordReset never discloses whether the email exists.
	RequestPasswordReset(ctx context.Context, email string) error

	// UpdatePassword completes the recovery flow using the recovery
	// session's access token.
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error

	Profile(ctx context.Context, accessToken string) (*AuthUser, error)
	SignOut(ctx context.Context, accessToken string) error
}

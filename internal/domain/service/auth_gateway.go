package service

import (
	"context"

	"github.com/google/uuid"
)

// AuthAccount is the provider-side user record. Metadata carries the
// free-form attributes captured at signup (first_name, last_name, phone,
// role).
type AuthAccount struct {
	ID       uuid.UUID
	Email    string
	Metadata map[string]interface{}
}

// AuthSession is an issued token pair.
type AuthSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	Account      AuthAccount
}

// SignUpParams registers a new account with the auth provider.
type SignUpParams struct {
	Email    string
	Password string
	Metadata map[string]interface{}
}

// AuthGateway talks to the external auth provider (Supabase GoTrue).
// Credential storage, email confirmation, and recovery mails all live on
// the provider side; this gateway only drives them.
type AuthGateway interface {
	// SignUp registers the account. The session is issued by the provider
	// only after email confirmation, so none is returned here.
	SignUp(ctx context.Context, params SignUpParams) (*AuthAccount, error)

	SignInWithPassword(ctx context.Context, email, password string) (*AuthSession, error)
	RefreshSession(ctx context.Context, refreshToken string) (*AuthSession, error)

	// SendPasswordRecovery mails a recovery link. The provider responds
	// identically whether or not the email exists.
	SendPasswordRecovery(ctx context.Context, email string) error

	// UpdatePassword changes the password of the account behind the access
	// token, which is how the recovery-session flow completes.
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error

	AccountFromToken(ctx context.Context, accessToken string) (*AuthAccount, error)
	SignOut(ctx context.Context, accessToken string) error
}

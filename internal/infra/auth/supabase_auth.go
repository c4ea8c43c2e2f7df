package auth

import (
	"context"

	"localia/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

// supabaseAuthGateway implements service.AuthGateway over the GoTrue
// client. GoTrue's client does not take contexts, so the ones passed in
// are not propagated further.
type supabaseAuthGateway struct {
	auth gotrue.Client
}

// NewSupabaseAuthGateway is the constructor for supabaseAuthGateway.
func NewSupabaseAuthGateway(client *supabase.Client) service.AuthGateway {
	return &supabaseAuthGateway{auth: client.Auth}
}

func (g *supabaseAuthGateway) SignUp(_ context.Context, params service.SignUpParams) (*service.AuthAccount, error) {
	resp, err := g.auth.Signup(types.SignupRequest{
		Email:    params.Email,
		Password: params.Password,
		Data:     params.Metadata,
	})
	if err != nil {
		return nil, errors.Wrap(err, "supabase signup failed")
	}

	return &service.AuthAccount{
		ID:       resp.ID,
		Email:    resp.Email,
		Metadata: params.Metadata,
	}, nil
}

func (g *supabaseAuthGateway) SignInWithPassword(_ context.Context, email, password string) (*service.AuthSession, error) {
	resp, err := g.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Wrap(err, "supabase password sign-in failed")
	}

	return toAuthSession(resp), nil
}

func (g *supabaseAuthGateway) RefreshSession(_ context.Context, refreshToken string) (*service.AuthSession, error) {
	resp, err := g.auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "supabase token refresh failed")
	}

	return toAuthSession(resp), nil
}

func (g *supabaseAuthGateway) SendPasswordRecovery(_ context.Context, email string) error {
	if err := g.auth.Recover(types.RecoverRequest{Email: email}); err != nil {
		return errors.Wrap(err, "supabase password recovery failed")
	}

	return nil
}

func (g *supabaseAuthGateway) UpdatePassword(_ context.Context, accessToken, newPassword string) error {
	_, err := g.auth.WithToken(accessToken).UpdateUser(types.UpdateUserRequest{
		Password: &newPassword,
	})
	if err != nil {
		return errors.Wrap(err, "supabase password update failed")
	}

	return nil
}

func (g *supabaseAuthGateway) AccountFromToken(_ context.Context, accessToken string) (*service.AuthAccount, error) {
	resp, err := g.auth.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, errors.Wrap(err, "supabase user lookup failed")
	}

	return &service.AuthAccount{
		ID:       resp.ID,
		Email:    resp.Email,
		Metadata: resp.UserMetadata,
	}, nil
}

func (g *supabaseAuthGateway) SignOut(_ context.Context, accessToken string) error {
	if err := g.auth.WithToken(accessToken).Logout(); err != nil {
		return errors.Wrap(err, "supabase sign-out failed")
	}

	return nil
}

func toAuthSession(resp *types.TokenResponse) *service.AuthSession {
	return &service.AuthSession{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		Account: service.AuthAccount{
			ID:       resp.User.ID,
			Email:    resp.User.Email,
			Metadata: resp.User.UserMetadata,
		},
	}
}

package auth

import (
	"localia/config"

	"github.com/pkg/errors"
	"github.com/supabase-community/supabase-go"
)

// NewSupabaseClient builds the Supabase API client from project settings.
// The anon key is enough here: privileged operations stay on the Supabase
// side, this service only drives the auth endpoints.
func NewSupabaseClient(cfg *config.Config) (*supabase.Client, error) {
	if cfg.Supabase == nil || cfg.Supabase.URL == "" || cfg.Supabase.AnonKey == "" {
		return nil, errors.New("supabase url and anon key are required")
	}

	client, err := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize supabase client")
	}

	return client, nil
}

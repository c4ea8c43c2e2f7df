package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"supabase": map[string]any{
			"jwtSecret": "",
		},
		"apiKeys": map[string]any{
			"rateLimitPerMinute": 60,
		},
		"regions": map[string]any{
			"failOpen": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SUPABASE_JWTSECRET", want: "supabase.jwtSecret"},
		{envKey: "APIKEYS_RATELIMITPERMINUTE", want: "apiKeys.rateLimitPerMinute"},
		{envKey: "REGIONS_FAILOPEN", want: "regions.failOpen"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

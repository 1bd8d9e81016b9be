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
		"auth": map[string]any{
			"tokenTTL": "24h",
			"rateLimit": map[string]any{
				"requestsPerSecond": 5,
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "AUTH_RATELIMIT_REQUESTSPERSECOND", want: "auth.rateLimit.requestsPerSecond"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestNormalizeToken(t *testing.T) {
	tests := map[string]string{
		"sslMode":     "sslmode",
		"SSL_MODE":    "sslmode",
		"max-request": "maxrequest",
		"":            "",
	}

	for in, want := range tests {
		if got := normalizeToken(in); got != want {
			t.Fatalf("normalizeToken(%q) = %q, want %q", in, got, want)
		}
	}
}

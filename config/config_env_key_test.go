package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"bakery": map[string]any{
			"defaultDueTime": "16:00",
			"timeZone":       "UTC",
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
		{envKey: "BAKERY_DEFAULTDUETIME", want: "bakery.defaultDueTime"},
		{envKey: "BAKERY_TIMEZONE", want: "bakery.timeZone"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Bakery)
	assert.Equal(t, "16:00", cfg.Bakery.DefaultDueTime)
	assert.Equal(t, time.UTC, cfg.Bakery.Location())
	assert.NotNil(t, cfg.Auth)
	assert.NotNil(t, cfg.PubSub)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Postgres: &postgres.DBConn{}}
		cfg.SecretKey.Access = "secret"
		applyDefaults(cfg)

		return cfg
	}

	require.NoError(t, validate(valid()))

	missingSecret := valid()
	missingSecret.SecretKey.Access = " "
	assert.Error(t, validate(missingSecret))

	badDueTime := valid()
	badDueTime.Bakery.DefaultDueTime = "4pm"
	assert.Error(t, validate(badDueTime))

	noPostgres := valid()
	noPostgres.Postgres = nil
	assert.Error(t, validate(noPostgres))
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}

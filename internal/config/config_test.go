package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thesis-portal/internal/models"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"DB_DSN":         "postgres://localhost/thesis",
		"SESSION_SECRET": "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, AuthModeStub, cfg.AuthMode)
	assert.Equal(t, models.RoleProfessor, cfg.StubRole)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"DB_DSN":         "postgres://localhost/thesis",
		"SESSION_SECRET": "secret",
		"SERVER_PORT":    "3000",
		"AUTH_MODE":      "session",
		"STUB_ROLE":      "secretary",
		"SESSION_TTL":    "30m",
	}))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, AuthModeSession, cfg.AuthMode)
	assert.Equal(t, models.RoleSecretary, cfg.StubRole)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestFromEnv_UnknownStubRole(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"DB_DSN":         "postgres://localhost/thesis",
		"SESSION_SECRET": "secret",
		"STUB_ROLE":      "dean",
	}))
	require.NoError(t, err)
	assert.Equal(t, models.RoleAnonymous, cfg.StubRole)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := map[string]map[string]string{
		"missing dsn":    {"SESSION_SECRET": "secret"},
		"missing secret": {"DB_DSN": "dsn"},
		"bad auth mode":  {"DB_DSN": "dsn", "SESSION_SECRET": "secret", "AUTH_MODE": "ldap"},
		"bad ttl":        {"DB_DSN": "dsn", "SESSION_SECRET": "secret", "SESSION_TTL": "soon"},
		"negative ttl":   {"DB_DSN": "dsn", "SESSION_SECRET": "secret", "SESSION_TTL": "-1h"},
	}
	for name, vals := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(vals))
			assert.Error(t, err)
		})
	}
}

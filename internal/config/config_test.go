package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krushi/internal/domain/contact"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, defaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, "http://localhost:3000", cfg.ClientURL)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, contact.DefaultRules(), cfg.ContactRules())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DEFAULT_LANGUAGE", "mr")
	t.Setenv("CONTACT_MESSAGE_MAX", "500")
	t.Setenv("DISCORD_WEBHOOK_URL", "https://discord.com/api/webhooks/1/abc")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "mr", cfg.DefaultLanguage)
	assert.Equal(t, 500, cfg.ContactRules().MessageMaxLength)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]map[string]string{
		"port range":       {"PORT": "70000"},
		"port not number":  {"PORT": "abc"},
		"database url":     {"DATABASE_URL": "not-a-url"},
		"client url":       {"CLIENT_URL": "localhost:3000"},
		"language":         {"DEFAULT_LANGUAGE": "fr"},
		"workers":          {"NOTIFY_WORKERS": "0"},
		"threshold":        {"CONTACT_NAME_MIN": "0"},
		"max below min":    {"CONTACT_MESSAGE_MIN": "50", "CONTACT_MESSAGE_MAX": "20"},
		"max above column": {"CONTACT_MESSAGE_MAX": "5000"},
		"webhook scheme":   {"DISCORD_WEBHOOK_URL": "ftp://discord.com/x"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config:")
		})
	}
}

func TestLoadClient(t *testing.T) {
	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)

	t.Setenv("HTTP_CLIENT_TIMEOUT", "0s")
	_, err = LoadClient()
	assert.Error(t, err)
}

func TestLoadReportsFirstInvalidThreshold(t *testing.T) {
	t.Setenv("CONTACT_MESSAGE_MIN", "0")
	t.Setenv("CONTACT_SUBJECT_MIN", "0")
	t.Setenv("CONTACT_NAME_MIN", "0")

	for range 5 {
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONTACT_NAME_MIN")
	}
}

func TestLoadMessageMaxAtColumnWidth(t *testing.T) {
	t.Setenv("CONTACT_MESSAGE_MAX", "1001")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONTACT_MESSAGE_MAX must not exceed 1000")

	t.Setenv("CONTACT_MESSAGE_MAX", "1000")
	_, err = Load()
	assert.NoError(t, err)
}

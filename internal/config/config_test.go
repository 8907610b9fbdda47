package config

import (
	"testing"
	"time"

	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCredentials_Defaults(t *testing.T) {
	creds, err := ParseCredentials(defaultUsers)

	require.NoError(t, err)
	require.Len(t, creds, 3)
	assert.Equal(t, Credential{Username: "gov", Password: "123", Role: models.RoleGovernment}, creds[0])
	assert.Equal(t, models.RoleNGO, creds[1].Role)
	assert.Equal(t, models.RoleDistrictOfficer, creds[2].Role)
}

func TestParseCredentials_SkipsEmptyEntries(t *testing.T) {
	creds, err := ParseCredentials(" gov:pw:GOVERNMENT , ,")

	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "gov", creds[0].Username)
}

func TestParseCredentials_Invalid(t *testing.T) {
	_, err := ParseCredentials("gov:123")
	assert.ErrorContains(t, err, "expected username:password:ROLE")

	_, err = ParseCredentials("gov:123:ADMIN")
	assert.ErrorContains(t, err, "unknown role")
}

func TestLoadStoreConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := LoadStoreConfig()

	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadDashboardConfig(t *testing.T) {
	t.Setenv("RECORD_STORE_URL", "http://store:8080/")
	t.Setenv("STORE_TIMEOUT", "3s")
	t.Setenv("API_KEYS", "a, b")

	cfg, err := LoadDashboardConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://store:8080", cfg.RecordStoreURL)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.Equal(t, []string{"a", "b"}, cfg.APIKeys)
	assert.Len(t, cfg.Users, 3)
}

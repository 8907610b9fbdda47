package auth

import (
	"context"
	"testing"

	"github.com/shenikar/drought_response_system/internal/config"
	"github.com/shenikar/drought_response_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticChecker(t *testing.T) {
	creds, err := config.ParseCredentials("gov:123:GOVERNMENT,ngo:123:NGO")
	require.NoError(t, err)
	checker := NewStaticChecker(creds)
	ctx := context.Background()

	user, err := checker.Authenticate(ctx, "ngo", "123")
	require.NoError(t, err)
	assert.Equal(t, models.User{Username: "ngo", Role: models.RoleNGO}, user)

	_, err = checker.Authenticate(ctx, "ngo", "1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = checker.Authenticate(ctx, "admin", "123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = checker.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"activity-booking/internal/domain/auth"
	"activity-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Principal(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	token, err := svc.GenerateToken("ops@example.com", auth.RoleMonitor)
	require.NoError(t, err)

	p, err := svc.Principal(token)
	require.NoError(t, err)
	assert.Equal(t, auth.Principal{Subject: "ops@example.com", Role: auth.RoleMonitor}, p)
}

func TestService_RejectsForeignAndExpiredTokens(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	other := jwt.NewService("other-secret", time.Hour)

	token, err := other.GenerateToken("x", auth.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.Principal(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	expired := jwt.NewService("secret", -time.Minute)
	token, err = expired.GenerateToken("x", auth.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)

	_, err = svc.ValidateToken("garbage")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestService_UnknownRole(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	token, err := svc.GenerateToken("x", auth.Role("viewer"))
	require.NoError(t, err)

	_, err = svc.Principal(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

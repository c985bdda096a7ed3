//go:build unit

package auth_test

import (
	"testing"

	"activity-booking/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	r, err := auth.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, r)

	_, err = auth.NewRole("viewer")
	assert.ErrorIs(t, err, auth.ErrInvalidRole)
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		role, min auth.Role
		want      bool
	}{
		{auth.RoleAdmin, auth.RoleMonitor, true},
		{auth.RoleAdmin, auth.RoleAdmin, true},
		{auth.RoleMonitor, auth.RoleMonitor, true},
		{auth.RoleMonitor, auth.RoleAdmin, false},
		{auth.Role("root"), auth.RoleMonitor, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+">="+string(tt.min), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.min))
		})
	}
}

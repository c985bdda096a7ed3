//go:build unit

package hold_test

import (
	"strings"
	"testing"
	"time"

	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHold(t *testing.T) {
	now := time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC)
	resourceID := uuid.New()

	tests := []struct {
		name      string
		sessionID string
		kind      resource.Kind
		quantity  int
		ttl       time.Duration
		wantErr   error
	}{
		{name: "default ttl", sessionID: "sess-1", kind: resource.KindSingleSlot, quantity: 2, ttl: hold.DefaultTTL},
		{name: "zero ttl is allowed", sessionID: "sess-1", kind: resource.KindMultiDaySession, quantity: 1, ttl: 0},
		{name: "blank session", sessionID: "   ", kind: resource.KindSingleSlot, quantity: 1, ttl: hold.DefaultTTL, wantErr: hold.ErrInvalidSessionID},
		{name: "session too long", sessionID: strings.Repeat("s", 129), kind: resource.KindSingleSlot, quantity: 1, ttl: hold.DefaultTTL, wantErr: hold.ErrInvalidSessionID},
		{name: "zero quantity", sessionID: "sess-1", kind: resource.KindSingleSlot, quantity: 0, ttl: hold.DefaultTTL, wantErr: hold.ErrInvalidQuantity},
		{name: "negative ttl", sessionID: "sess-1", kind: resource.KindSingleSlot, quantity: 1, ttl: -time.Minute, wantErr: hold.ErrInvalidTTL},
		{name: "invalid kind", sessionID: "sess-1", kind: resource.Kind("concert"), quantity: 1, ttl: hold.DefaultTTL, wantErr: resource.ErrInvalidKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := hold.NewHold(tt.sessionID, resourceID, tt.kind, tt.quantity, tt.ttl, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, now.Add(tt.ttl), h.ExpiresAt())
			assert.Equal(t, tt.quantity, h.Quantity())
			assert.Equal(t, resourceID, h.ResourceID())
		})
	}
}

func TestHold_IsActive(t *testing.T) {
	now := time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC)

	h, err := hold.NewHold("sess-1", uuid.New(), resource.KindSingleSlot, 1, time.Minute, now)
	require.NoError(t, err)

	assert.True(t, h.IsActive(now))
	assert.True(t, h.IsActive(now.Add(59*time.Second)))
	assert.False(t, h.IsActive(now.Add(time.Minute)), "expiry instant is already expired")

	zero, err := hold.NewHold("sess-1", uuid.New(), resource.KindSingleSlot, 1, 0, now)
	require.NoError(t, err)
	assert.False(t, zero.IsActive(now))
}

func TestHold_Extend(t *testing.T) {
	now := time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC)

	h, err := hold.NewHold("sess-1", uuid.New(), resource.KindSingleSlot, 1, 10*time.Minute, now)
	require.NoError(t, err)

	require.NoError(t, h.Extend(15*time.Minute, now.Add(5*time.Minute)))
	assert.Equal(t, now.Add(25*time.Minute), h.ExpiresAt(), "extension starts from the current expiry")

	err = h.Extend(time.Minute, now.Add(time.Hour))
	assert.ErrorIs(t, err, hold.ErrHoldExpired)
}

func TestSumActive(t *testing.T) {
	now := time.Date(2025, 5, 10, 14, 0, 0, 0, time.UTC)
	resourceID := uuid.New()

	holds := []*hold.Hold{
		hold.ReconstructHold(uuid.New(), "a", resourceID, resource.KindSingleSlot, 2, now.Add(time.Minute), now),
		hold.ReconstructHold(uuid.New(), "b", resourceID, resource.KindSingleSlot, 3, now, now.Add(-time.Minute)),
		hold.ReconstructHold(uuid.New(), "c", resourceID, resource.KindSingleSlot, 1, now.Add(-time.Second), now.Add(-time.Hour)),
	}

	assert.Equal(t, 2, hold.SumActive(holds, now))
}

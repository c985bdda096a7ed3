//go:build unit

package cart_test

import (
	"testing"
	"time"

	"activity-booking/internal/domain/cart"
	"activity-booking/internal/domain/hold"
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountFor(t *testing.T) {
	now := time.Now()
	r, err := resource.NewResource(resource.SingleSlot{}, "Tandem", now.Add(time.Hour), 2, money.Euros(110), now)
	require.NoError(t, err)
	other, err := resource.NewResource(resource.SingleSlot{}, "Tandem 2", now.Add(time.Hour), 2, money.Euros(110), now)
	require.NoError(t, err)

	p := order.Participant{FirstName: "Ana", LastName: "Roux", Email: "ana@example.com", Phone: "06", WeightKg: 55, HeightCm: 160}

	a, err := cart.NewBookingItem("sess", r, p, now)
	require.NoError(t, err)
	b, err := cart.NewBookingItem("sess", r, p, now)
	require.NoError(t, err)
	c, err := cart.NewBookingItem("sess", other, p, now)
	require.NoError(t, err)
	v, err := cart.NewVoucherItem("sess", order.VoucherPurchase{Amount: money.Euros(30)}, now)
	require.NoError(t, err)

	items := []*cart.Item{a, b, c, v}
	assert.Equal(t, 2, cart.CountFor(items, r.ID()))
	assert.Equal(t, 1, cart.CountFor(items, other.ID()))
	assert.Equal(t, 0, cart.CountFor(items, uuid.New()))
}

func TestNewBookingItem_Validation(t *testing.T) {
	now := time.Now()
	r, err := resource.NewResource(resource.SingleSlot{}, "Tandem", now.Add(time.Hour), 2, money.Euros(110), now)
	require.NoError(t, err)

	_, err = cart.NewBookingItem("", r, order.Participant{}, now)
	assert.ErrorIs(t, err, hold.ErrInvalidSessionID)

	_, err = cart.NewBookingItem("sess", nil, order.Participant{}, now)
	assert.ErrorIs(t, err, cart.ErrMissingResource)

	_, err = cart.NewBookingItem("sess", r, order.Participant{FirstName: "A"}, now)
	assert.ErrorIs(t, err, order.ErrParticipantName)
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"activity-booking/internal/domain/booking"
	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/order"
	"activity-booking/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrderItem(t *testing.T) {
	now := time.Now()
	r, err := resource.NewResource(resource.SingleSlot{}, "Tandem", now.Add(time.Hour), 2, money.Euros(110), now)
	require.NoError(t, err)

	p := order.Participant{FirstName: "Ana", LastName: "Roux", Email: "ana@example.com", Phone: "06", WeightKg: 55, HeightCm: 160}
	item, err := order.NewBookingItem(r, p)
	require.NoError(t, err)

	orderID, customerID := uuid.New(), uuid.New()
	b, err := booking.FromOrderItem(item, orderID, customerID, now)
	require.NoError(t, err)
	assert.Equal(t, r.ID(), b.ResourceID())
	assert.Equal(t, item.ID(), b.OrderItemID())
	assert.Equal(t, orderID, b.OrderID())
	assert.Equal(t, customerID, b.CustomerID())
	assert.Equal(t, p, b.Participant())

	gift, err := order.NewVoucherPurchaseItem(order.VoucherPurchase{Amount: money.Euros(40)})
	require.NoError(t, err)
	_, err = booking.FromOrderItem(gift, orderID, customerID, now)
	assert.ErrorIs(t, err, booking.ErrNotBookable)
}

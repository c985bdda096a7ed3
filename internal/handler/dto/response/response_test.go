//go:build unit

package response_test

import (
	"testing"
	"time"

	"activity-booking/internal/domain/money"
	resdto "activity-booking/internal/handler/dto/response"
	"activity-booking/internal/usecase/commands"
	"activity-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOrderView(t *testing.T) {
	resourceID := uuid.New()
	intent := "pi_1"
	view := &queries.OrderView{
		ID:          uuid.New(),
		OrderNumber: "ORD-2026-000001ABC",
		Status:      "PENDING",
		Subtotal:    30000,
		Deposit:     15000,
		Items: []*queries.OrderItemView{{
			ID:          uuid.New(),
			Type:        "MULTI_DAY_SESSION_BOOKING",
			Quantity:    1,
			ResourceID:  &resourceID,
			Participant: &queries.ParticipantView{FirstName: "Lucie", WeightKg: 65},
		}},
		Payment: &queries.PaymentView{IntentID: &intent, ClientSecret: "secret", Status: "PENDING", Amount: 15000},
	}

	resp := resdto.FromOrderView(view)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, int64(15000), resp.Deposit)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, &resourceID, resp.Items[0].ResourceID)
	require.NotNil(t, resp.Items[0].Participant)
	assert.Equal(t, "Lucie", resp.Items[0].Participant.FirstName)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, "pi_1", *resp.Payment.IntentID)
	assert.NotNil(t, resp.Vouchers)
}

func TestFromCreateOrderResult(t *testing.T) {
	result := &commands.CreateOrderResult{
		Order:      &queries.OrderView{ID: uuid.New()},
		Intent:     &commands.PayableIntent{IntentID: "pi_1", ClientSecret: "s", Amount: money.Cents(15000), Currency: "eur"},
		IsReplayed: true,
	}

	resp := resdto.FromCreateOrderResult(result)

	assert.True(t, resp.Replayed)
	require.NotNil(t, resp.PaymentIntent)
	assert.Equal(t, int64(15000), resp.PaymentIntent.Amount)
	assert.Equal(t, "s", resp.PaymentIntent.ClientSecret)
}

func TestFromCartView_Empty(t *testing.T) {
	resp := resdto.FromCartView(&queries.CartView{SessionID: "s"})

	assert.Equal(t, "s", resp.SessionID)
	assert.NotNil(t, resp.Items)
	assert.NotNil(t, resp.Holds)
}

func TestFromAvailabilityView(t *testing.T) {
	view := &queries.AvailabilityView{ResourceID: uuid.New(), Kind: "single_slot", AvailablePlaces: 3, TotalPlaces: 6, HeldCount: 3}

	resp := resdto.FromAvailabilityView(view)

	assert.Equal(t, view.ResourceID, resp.ResourceID)
	assert.Equal(t, 3, resp.AvailablePlaces)
	assert.Equal(t, 3, resp.HeldCount)
}

func TestFromPaymentOutcome(t *testing.T) {
	replay := resdto.FromPaymentOutcome(&commands.PaymentOutcomeResult{Replayed: true})
	assert.True(t, replay.Replayed)
	assert.Nil(t, replay.OrderID)

	id := uuid.New()
	done := resdto.FromPaymentOutcome(&commands.PaymentOutcomeResult{
		OrderID:      id,
		Status:       "PAID",
		Materialized: commands.MaterializeResult{BookingsCreated: 2},
	})
	assert.Equal(t, resdto.CallbackProcessed, done.Status)
	assert.Equal(t, "PAID", done.OrderStatus)
	assert.Equal(t, 2, done.Materialized.BookingsCreated)
}

func TestFromVoucherValidation(t *testing.T) {
	exp := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	resp := resdto.FromVoucherValidation(&queries.VoucherValidationView{Code: "SCP-A", Valid: true, Remaining: 500, ExpiresAt: &exp})

	assert.True(t, resp.Valid)
	assert.Equal(t, int64(500), resp.Remaining)
	assert.Equal(t, exp, *resp.ExpiresAt)
}

//go:build unit

package payment_test

import (
	"testing"
	"time"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOnlinePayment(t *testing.T) {
	now := time.Now()

	p, err := payment.NewOnlinePayment(uuid.New(), "pi_123", "secret", money.Euros(150), "EUR", now)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPending, p.Status())
	assert.Equal(t, payment.MethodOnline, p.Method())
	assert.Equal(t, "eur", p.Currency())

	_, err = payment.NewOnlinePayment(uuid.New(), "", "secret", money.Euros(150), "", now)
	assert.ErrorIs(t, err, payment.ErrMissingIntentID)

	_, err = payment.NewOnlinePayment(uuid.New(), "pi_1", "secret", money.Zero(), "", now)
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)
}

func TestPayment_Transitions(t *testing.T) {
	now := time.Now()

	p, err := payment.NewOnlinePayment(uuid.New(), "pi_123", "secret", money.Euros(150), "", now)
	require.NoError(t, err)
	require.NoError(t, p.MarkSucceeded(now))
	assert.ErrorIs(t, p.MarkSucceeded(now), payment.ErrNotPending)
	assert.ErrorIs(t, p.MarkFailed(now), payment.ErrNotPending)

	failed, err := payment.NewOnlinePayment(uuid.New(), "pi_456", "secret", money.Euros(150), "", now)
	require.NoError(t, err)
	require.NoError(t, failed.MarkFailed(now))
	assert.Equal(t, payment.StatusFailed, failed.Status())
}

func TestPayment_RecordManual(t *testing.T) {
	now := time.Now()

	p, err := payment.NewOnlinePayment(uuid.New(), "pi_123", "secret", money.Euros(150), "", now)
	require.NoError(t, err)

	assert.ErrorIs(t, p.RecordManual(money.Zero(), "cash", now), payment.ErrInvalidAmount)

	require.NoError(t, p.RecordManual(money.Euros(150), " cash at desk ", now))
	assert.Equal(t, payment.MethodManual, p.Method())
	assert.Equal(t, payment.StatusSucceeded, p.Status())
	require.NotNil(t, p.Note())
	assert.Equal(t, "cash at desk", *p.Note())
}

func TestNewVoucherPayment(t *testing.T) {
	p := payment.NewVoucherPayment(uuid.New(), "", time.Now())
	assert.Equal(t, payment.StatusSucceeded, p.Status())
	assert.Equal(t, payment.MethodVoucher, p.Method())
	assert.Nil(t, p.IntentID())
	assert.True(t, p.Amount().IsZero())
}

func TestParseOutcome(t *testing.T) {
	o, ok := payment.ParseOutcome("succeeded")
	assert.True(t, ok)
	assert.Equal(t, payment.OutcomeSucceeded, o)

	_, ok = payment.ParseOutcome("refunded")
	assert.False(t, ok)
}

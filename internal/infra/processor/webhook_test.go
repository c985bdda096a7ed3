//go:build unit

package processor_test

import (
	"testing"
	"time"

	"activity-booking/internal/domain/payment"
	"activity-booking/internal/infra/processor"
	"activity-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testSecret = "whsec_test"

func signed(t *testing.T, payload string) (body []byte, header string) {
	t.Helper()
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
	return sp.Payload, sp.Header
}

func TestWebhookVerifier_Parse(t *testing.T) {
	v := processor.NewWebhookVerifier(testSecret)

	t.Run("succeeded intent", func(t *testing.T) {
		body, header := signed(t, `{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent"}}}`)

		ev, ok, err := v.Parse(body, header)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "evt_1", ev.ID)
		assert.Equal(t, "pi_1", ev.IntentID)
		assert.Equal(t, payment.OutcomeSucceeded, ev.Outcome)
	})

	t.Run("failed intent", func(t *testing.T) {
		body, header := signed(t, `{"id":"evt_2","object":"event","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_2","object":"payment_intent"}}}`)

		ev, ok, err := v.Parse(body, header)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, payment.OutcomeFailed, ev.Outcome)
	})

	t.Run("other event types are not actionable", func(t *testing.T) {
		body, header := signed(t, `{"id":"evt_3","object":"event","type":"charge.refunded","data":{"object":{"id":"ch_1","object":"charge"}}}`)

		ev, ok, err := v.Parse(body, header)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "charge.refunded", ev.Type)
	})

	t.Run("bad signature", func(t *testing.T) {
		body, _ := signed(t, `{"id":"evt_4","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_4"}}}`)

		_, _, err := v.Parse(body, "t=1,v1=deadbeef")

		assert.ErrorIs(t, err, processor.ErrInvalidSignature)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("intent without id", func(t *testing.T) {
		body, header := signed(t, `{"id":"evt_5","object":"event","type":"payment_intent.succeeded","data":{"object":{"object":"payment_intent"}}}`)

		_, _, err := v.Parse(body, header)

		assert.ErrorIs(t, err, processor.ErrMalformedEvent)
	})

	t.Run("no secret configured", func(t *testing.T) {
		_, _, err := processor.NewWebhookVerifier("").Parse([]byte(`{}`), "")

		assert.ErrorIs(t, err, processor.ErrWebhookDisabled)
	})
}

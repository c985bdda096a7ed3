//go:build unit

package processor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"activity-booking/internal/domain/money"
	"activity-booking/internal/infra/processor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func newStripeProcessor(t *testing.T, handler http.HandlerFunc) *processor.StripeProcessor {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return processor.NewStripeProcessor("sk_test_123", backend)
}

func TestStripeProcessor_CreatePayableIntent(t *testing.T) {
	var (
		gotKey      string
		gotMetadata string
		gotAmount   string
	)
	p := newStripeProcessor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotKey = r.Header.Get("Idempotency-Key")
		gotMetadata = r.PostForm.Get("metadata[orderId]")
		gotAmount = r.PostForm.Get("amount")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":15000,"currency":"eur","client_secret":"pi_123_secret_abc"}`))
	})

	intent, err := p.CreatePayableIntent(context.Background(), money.Cents(15000), "eur",
		map[string]string{"orderId": "o-1"}, "order-o-1")

	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.IntentID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, money.Cents(15000), intent.Amount)
	assert.Equal(t, "eur", intent.Currency)
	assert.Equal(t, "order-o-1", gotKey)
	assert.Equal(t, "o-1", gotMetadata)
	assert.Equal(t, "15000", gotAmount)
}

func TestStripeProcessor_CancelIntent(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		p := newStripeProcessor(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payment_intents/pi_1/cancel", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","status":"canceled"}`))
		})

		assert.NoError(t, p.CancelIntent(context.Background(), "pi_1"))
	})

	t.Run("already settled intent is not an error", func(t *testing.T) {
		p := newStripeProcessor(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"payment_intent_unexpected_state","message":"already canceled"}}`))
		})

		assert.NoError(t, p.CancelIntent(context.Background(), "pi_1"))
	})

	t.Run("other failures are returned", func(t *testing.T) {
		p := newStripeProcessor(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"no such intent"}}`))
		})

		assert.Error(t, p.CancelIntent(context.Background(), "pi_missing"))
	})
}

func TestLocalProcessor(t *testing.T) {
	p := processor.NewLocalProcessor()
	ctx := context.Background()

	first, err := p.CreatePayableIntent(ctx, money.Cents(500), "eur", nil, "k1")
	require.NoError(t, err)
	again, err := p.CreatePayableIntent(ctx, money.Cents(500), "eur", nil, "k1")
	require.NoError(t, err)
	other, err := p.CreatePayableIntent(ctx, money.Cents(500), "eur", nil, "k2")
	require.NoError(t, err)

	assert.Equal(t, first.IntentID, again.IntentID)
	assert.NotEqual(t, first.IntentID, other.IntentID)
	assert.NoError(t, p.CancelIntent(ctx, first.IntentID))
}

package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntentSuccess(t *testing.T) {
	var gotAmount, gotCurrency, gotIdemKey, gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotAmount = r.PostForm.Get("amount")
		gotCurrency = r.PostForm.Get("currency")
		gotIdemKey = r.Header.Get("Idempotency-Key")
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	intent, err := c.CreateIntent(context.Background(), 100.50, "usd", "booking-uuid-1")
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	// Amount travels in minor units.
	assert.Equal(t, "10050", gotAmount)
	assert.Equal(t, "usd", gotCurrency)
	assert.Equal(t, "booking-uuid-1", gotIdemKey)
	assert.Equal(t, "Bearer sk_test_abc", gotAuth)
}

func TestCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	for _, amount := range []float64{0, -5} {
		_, err := c.CreateIntent(context.Background(), amount, "usd", "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.False(t, called, "processor must not be contacted for an invalid amount")
}

func TestCreateIntentProcessorDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	_, err := c.CreateIntent(context.Background(), 100, "usd", "")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCreateIntentUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, "sk_test_abc")
	_, err := c.CreateIntent(context.Background(), 100, "usd", "")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCreateIntentDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_abc")
	_, err := c.CreateIntent(context.Background(), 100, "usd", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "Your card was declined.")
}

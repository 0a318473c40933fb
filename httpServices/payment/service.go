package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidAmount is returned for a non-positive charge amount. The
	// processor is never contacted in that case.
	ErrInvalidAmount = errors.New("payment amount must be a positive number")
	// ErrUnavailable covers transport faults, timeouts and processor 5xx
	// responses. Callers may retry.
	ErrUnavailable = errors.New("payment processor unavailable")
)

// Client talks to a Stripe-style payment-intent API. It only creates
// authorization intents; capture and settlement happen elsewhere.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secretKey  string
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   baseURL,
		secretKey: secretKey,
	}
}

// CreateIntent authorizes a charge of amount major units in the given
// currency and returns the intent handle. The amount is sent in minor units.
// The idempotency key makes retries safe against duplicate charges; pass the
// booking's UUID. The context bounds the call.
func (c *Client) CreateIntent(ctx context.Context, amount float64, currency, idempotencyKey string) (*Intent, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(math.Round(amount*100)), 10))
	form.Set("currency", currency)
	form.Add("payment_method_types[]", "card")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Timeouts and connection failures are retryable from the caller's
		// perspective.
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: processor returned %s", ErrUnavailable, resp.Status)
	}

	if resp.StatusCode != http.StatusOK {
		var apiResp apiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil || apiResp.Error.Message == "" {
			return nil, fmt.Errorf("payment API returned non-OK status: %s", resp.Status)
		}
		if apiResp.Error.Code == "parameter_invalid_integer" || apiResp.Error.Code == "amount_too_small" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, apiResp.Error.Message)
		}
		return nil, fmt.Errorf("payment declined: %s", apiResp.Error.Message)
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

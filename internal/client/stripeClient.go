package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bistro-boss-api/internal/config"
)

type StripeClient interface {
	// CreatePaymentIntent requests a charge intent for an amount in minor
	// units (cents) and returns the client secret the frontend confirms with.
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

type stripeClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	secretKey  string
}

func NewStripeClient(cfg *config.Stripe) StripeClient {
	return &stripeClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		secretKey:  cfg.SecretKey,
	}
}

func (c *stripeClientImpl) CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseApiURL+"/v1/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe create intent request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("stripe error %d: %s", resp.StatusCode, string(b))
	}

	var result struct {
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode stripe response: %w", err)
	}

	return result.ClientSecret, nil
}

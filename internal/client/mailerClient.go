package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bistro-boss-api/internal/config"
)

type MailerClient interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

type mailgunClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
	domain     string
	sender     string
}

func NewMailgunClient(cfg *config.Mailgun) MailerClient {
	return &mailgunClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		apiKey:     cfg.APIKey,
		domain:     cfg.Domain,
		sender:     cfg.Sender,
	}
}

func (c *mailgunClientImpl) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	form := url.Values{}
	form.Set("from", c.sender)
	form.Set("to", recipient)
	form.Set("subject", subject)
	form.Set("html", htmlBody)

	endpoint := fmt.Sprintf("%s/v3/%s/messages", c.baseApiURL, c.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}

	req.SetBasicAuth("api", c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailgun send request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailgun error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}

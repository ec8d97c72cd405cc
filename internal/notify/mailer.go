// Package notify turns workflow events into emails. Delivery goes
// through an HTTP transactional mail API; when no API key is
// configured the mailer degrades to logging.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"afriverse.co/editorial/core/config"
)

type Email struct {
	To      []string `json:"to"`
	From    string   `json:"from"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type httpMailer struct {
	apiKey  string
	baseURL string
	from    string
	client  *http.Client
}

func NewMailer(cfg config.MailConfig) Mailer {
	if cfg.APIKey == "" {
		return &logMailer{}
	}
	return &httpMailer{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		from:    cfg.From,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *httpMailer) Send(ctx context.Context, email Email) error {
	if email.From == "" {
		email.From = m.from
	}

	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("encoding email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mail API returned %d: %s", resp.StatusCode, body)
	}

	slog.DebugContext(ctx, "email sent", "to", email.To, "subject", email.Subject)
	return nil
}

// logMailer is the development fallback: no key, no delivery, just a
// log line so the flow stays observable.
type logMailer struct{}

func (m *logMailer) Send(ctx context.Context, email Email) error {
	slog.InfoContext(ctx, "email delivery skipped (mail API not configured)",
		"to", email.To,
		"subject", email.Subject)
	return nil
}

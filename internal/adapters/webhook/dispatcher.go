package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"servdash/internal/ports/output"
)

var _ output.Notifier = (*Dispatcher)(nil)

// Dispatcher posts actions to the bot's webhook endpoint.
type Dispatcher struct {
	url    string
	secret string
	client *http.Client
}

// NewDispatcher builds a Dispatcher. A nil client gets one with timeout.
func NewDispatcher(url, secret string, timeout time.Duration, client *http.Client) *Dispatcher {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Dispatcher{url: url, secret: secret, client: client}
}

// Send POSTs {"action": action, ...payload} with the bot bearer secret.
// payload must encode to a JSON object. Non-2xx answers and transport
// failures are logged and returned.
func (d *Dispatcher) Send(ctx context.Context, action string, payload any) error {
	body, err := flatten(action, payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.secret)

	resp, err := d.client.Do(req)
	if err != nil {
		log.Printf("❌ Webhook %s: %v", action, err)
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("❌ Webhook %s refusé: %s", action, resp.Status)
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	log.Printf("🛎 Webhook %s envoyé", action)
	return nil
}

func flatten(action string, payload any) ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode webhook payload: %w", err)
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("webhook payload must be a JSON object: %w", err)
		}
	}
	encodedAction, err := json.Marshal(action)
	if err != nil {
		return nil, err
	}
	fields["action"] = encodedAction
	return json.Marshal(fields)
}

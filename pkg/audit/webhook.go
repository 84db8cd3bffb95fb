package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/tendly/tenderchat/pkg/env/webhook"
	"github.com/tendly/tenderchat/pkg/version"
)

const (
	connectTimeout = 5 * time.Second
	requestTimeout = 30 * time.Second
)

// WebhookAudit forwards audit events to an external HTTP collector.
type WebhookAudit struct {
	WebhookEnv *webhook.Env

	client *http.Client
}

var _ Audit = (*WebhookAudit)(nil)

type Option func(*WebhookAudit)

func WithHTTPClient(client *http.Client) Option {
	return func(w *WebhookAudit) {
		w.SetHTTPClient(client)
	}
}

func NewWebhookAudit(env *webhook.Env, options ...Option) *WebhookAudit {
	w := &WebhookAudit{WebhookEnv: env}

	w.client = &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
		},
	}

	for _, option := range options {
		option(w)
	}

	return w
}

func (d *WebhookAudit) SetHTTPClient(client *http.Client) {
	d.client = client
}

func (d *WebhookAudit) Write(q *QueryData) error {
	content, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("unable to marshal audit event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.WebhookEnv.Endpoint, bytes.NewBuffer(content))
	if err != nil {
		return fmt.Errorf("unable to create request to audit collector: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("User-Agent", fmt.Sprintf("tenderchat/%s", version.Version()))
	if d.WebhookEnv.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", d.WebhookEnv.Token))
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("unable to send request to audit collector: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return fmt.Errorf("unable to read audit collector response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("unable to write to audit collector: %s", resp.Status)
	}

	return nil
}

package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/betbot/betsuggest/pkg/logger"
)

// The AI leg can take a while: the n8n workflow runs an LLM before answering,
// so the dispatch timeout is deliberately longer than the upstream data calls.
const defaultTimeout = 60 * time.Second

// ErrUnconfigured means no webhook address is set. This is a per-request
// error, not a startup failure.
var ErrUnconfigured = errors.New("n8n webhook URL is not configured in environment variables")

// ErrUnreachable means the webhook produced no response at all.
var ErrUnreachable = errors.New("n8n webhook request failed - no response received")

// StatusError is a non-success response from the webhook.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("n8n webhook returned error: %d - %s", e.Status, e.Body)
}

// Dispatcher delivers payloads to the n8n webhooks and returns the engine's
// response unmodified. No retries; failures surface directly to the caller.
type Dispatcher struct {
	client *resty.Client

	// webhookURL receives the plain suggestion payload; agentURL receives the
	// AI-agent payload (instruction + joined betting data).
	webhookURL string
	agentURL   string
}

func NewDispatcher(webhookURL, agentURL string) *Dispatcher {
	return &Dispatcher{
		client:     resty.New().SetTimeout(defaultTimeout),
		webhookURL: strings.TrimSpace(webhookURL),
		agentURL:   strings.TrimSpace(agentURL),
	}
}

// SendToAgent posts the joined betting data plus instruction to the AI-agent
// webhook and returns the raw engine response.
func (d *Dispatcher) SendToAgent(ctx context.Context, payload any) (json.RawMessage, error) {
	return d.post(ctx, d.agentURL, payload)
}

// SendSuggestions posts a payload to the base n8n webhook.
func (d *Dispatcher) SendSuggestions(ctx context.Context, payload any) (json.RawMessage, error) {
	return d.post(ctx, d.webhookURL, payload)
}

func (d *Dispatcher) post(ctx context.Context, url string, payload any) (json.RawMessage, error) {
	if url == "" {
		return nil, ErrUnconfigured
	}

	logger.Debugf("[webhook] POST %s", url)
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		return nil, errors.Wrap(ErrUnreachable, err.Error())
	}
	if resp.IsError() {
		return nil, &StatusError{Status: resp.StatusCode(), Body: strings.TrimSpace(string(resp.Body()))}
	}

	body := append(json.RawMessage(nil), resp.Body()...)
	return body, nil
}

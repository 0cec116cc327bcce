package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/config"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/domain/models"
)

// Client publishes audit trail change events to an external consumer.
type Client interface {
	PublishEvent(ctx context.Context, event models.EntryEvent) error
}

// WebhookClient is a resty-backed implementation of Client that POSTs events
// to a configured webhook URL.
type WebhookClient struct {
	httpClient *resty.Client
	webhookURL string
}

// NewClient builds a webhook notifier using the provided configuration values.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	if cfg.AuthToken != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AuthToken))
	}

	return &WebhookClient{
		httpClient: restyClient,
		webhookURL: cfg.WebhookURL,
	}
}

// PublishEvent delivers the event to the webhook. Any non-2xx response is
// reported as an error carrying the status code and body.
func (c *WebhookClient) PublishEvent(ctx context.Context, event models.EntryEvent) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(event).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("publish %s event: webhook responded %d: %s", event.Type, resp.StatusCode(), resp.String())
	}

	return nil
}

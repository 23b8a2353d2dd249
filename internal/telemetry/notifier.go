package telemetry

import (
	"time"

	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/models"
	"github.com/go-resty/resty/v2"
)

// WebhookNotifier forwards raised alerts to an external HTTP endpoint
// (chat integration, paging system). Delivery is strictly best-effort:
// failures are logged and dropped, never retried into the request path.
type WebhookNotifier struct {
	client     *resty.Client
	webhookURL string
	logger     *logger.Logger
}

// NewWebhookNotifier builds a notifier posting to webhookURL.
// Returns nil when webhookURL is empty, which callers treat as
// "notifications disabled".
func NewWebhookNotifier(webhookURL string, log *logger.Logger) *WebhookNotifier {
	if webhookURL == "" {
		return nil
	}

	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &WebhookNotifier{
		client:     client,
		webhookURL: webhookURL,
		logger:     log,
	}
}

// Notify posts the alert as a JSON body to the configured webhook.
// Intended to be registered via [Store.OnAlert].
func (n *WebhookNotifier) Notify(alert models.Alert) {
	response, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(alert).
		Post(n.webhookURL)
	if err != nil {
		n.logger.Error().Err(err).Int64("alert_id", alert.ID).Msg("alert webhook delivery failed")
		return
	}

	if response.IsError() {
		n.logger.Error().
			Int64("alert_id", alert.ID).
			Int("status_code", response.StatusCode()).
			Msg("alert webhook rejected notification")
	}
}

package telemetry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-core/internal/logger"
	"github.com/MKhiriev/go-shop-core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebhookNotifier_EmptyURLDisablesNotifications(t *testing.T) {
	assert.Nil(t, NewWebhookNotifier("", logger.Nop()))
}

func TestWebhookNotifier_PostsAlertAsJSON(t *testing.T) {
	received := make(chan models.Alert, 1)

	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var alert models.Alert
		require.NoError(t, json.NewDecoder(r.Body).Decode(&alert))
		received <- alert
	}))
	defer webhook.Close()

	notifier := NewWebhookNotifier(webhook.URL, logger.Nop())
	require.NotNil(t, notifier)

	notifier.Notify(models.Alert{
		ID:       7,
		Severity: models.SeverityCritical,
		Message:  "elevated error rate",
	})

	select {
	case alert := <-received:
		assert.Equal(t, int64(7), alert.ID)
		assert.Equal(t, models.SeverityCritical, alert.Severity)
	case <-time.After(2 * time.Second):
		t.Fatal("webhook did not receive the alert")
	}
}

func TestWebhookNotifier_RejectionIsSwallowed(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer webhook.Close()

	notifier := NewWebhookNotifier(webhook.URL, logger.Nop())

	// delivery failures must never propagate to the caller
	assert.NotPanics(t, func() {
		notifier.Notify(models.Alert{ID: 1, Severity: models.SeverityWarning, Message: "slow request"})
	})
}

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"1h"`, want: time.Hour},
		{name: "composite duration string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds number", input: `5000000000`, want: 5 * time.Second},
		{name: "invalid string", input: `"not-a-duration"`, wantErr: true},
		{name: "invalid json", input: `{`, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(test.input), &d)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON_RoundTrip(t *testing.T) {
	original := Duration(90 * time.Minute)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))

	var restored Duration
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, original, restored)
}

func TestParseJSON_FullConfig(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "secret",
			"token_issuer":   "go-shop-core",
			"token_duration": "2h",
			"environment":    "staging",
		},
		"server": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": "30s",
		},
		"storage": map[string]any{
			"db":      map[string]any{"dsn": "postgres://localhost:5432/shop"},
			"archive": map[string]any{"path": "/var/lib/shop/metrics.db"},
		},
		"telemetry": map[string]any{
			"error_rate_threshold": 0.25,
			"latency_threshold_ms": 2000,
			"retention_hours":      48,
			"max_samples":          5000,
			"sweep_interval":       "10m",
			"alert_webhook_url":    "https://hooks.example.com/alerts",
		},
	})

	cfg, err := parseJSON(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/var/lib/shop/metrics.db", cfg.Storage.Archive.Path)
	assert.InDelta(t, 0.25, cfg.Telemetry.ErrorRateThreshold, 0.0001)
	assert.Equal(t, int64(2000), cfg.Telemetry.LatencyThresholdMs)
	assert.Equal(t, 48, cfg.Telemetry.RetentionHours)
	assert.Equal(t, 5000, cfg.Telemetry.MaxSamples)
	assert.Equal(t, 10*time.Minute, cfg.Telemetry.SweepInterval)
	assert.Equal(t, "https://hooks.example.com/alerts", cfg.Telemetry.AlertWebhookURL)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	assert.Error(t, err)
}

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a StructuredConfig that passes validation.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "go-shop-core",
			TokenDuration: time.Hour,
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/shop"},
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "secret", TokenIssuer: "go-shop-core"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://localhost:5432/shop"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost:5432/shop", cfg.Storage.DB.DSN)
}

// TestBuild_EarlierSourceWins verifies the merge precedence: a field already
// populated by an earlier source is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()

	first := validConfig()
	first.Server.HTTPAddress = "localhost:9090"

	second := validConfig()
	second.Server.HTTPAddress = "localhost:8080"

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
}

// TestBuild_ValidatesResult verifies that an incomplete merged config is
// rejected by validation.
func TestBuild_ValidatesResult(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_FillsUnsetFields verifies that a JSON file referenced by an
// earlier source is loaded and fills fields that remained unset.
func TestWithJSON_FillsUnsetFields(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "json-secret",
			"token_issuer":   "go-shop-core",
			"token_duration": "45m",
		},
		"server": map[string]any{
			"http_address": "localhost:8080",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://localhost:5432/shop"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

// TestWithJSON_MissingFileSetsError verifies that an unreadable JSON path is
// surfaced as a build error.
func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/config.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// TestWithJSON_NoPathIsNoop verifies that the JSON step does nothing when no
// earlier source named a file.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	logger "n8n-relay-api/src/infrastructure/logger"

	"github.com/stretchr/testify/assert"
)

func setupLogger(t *testing.T) *logger.Logger {
	loggerInstance, err := logger.NewLogger()
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	return loggerInstance
}

func TestResolver_ReadsEnvironment(t *testing.T) {
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.example.com/webhook/abc")
	t.Setenv("N8N_API_KEY", "secret-key")

	resolver := NewResolver(setupLogger(t))
	cfg := resolver.Resolve()

	assert.True(t, cfg.IsConfigured())
	assert.Equal(t, "https://n8n.example.com/webhook/abc", cfg.WebhookURL)
	assert.Equal(t, "secret-key", cfg.APIKey)
}

func TestResolver_MissingURLIsUnconfigured(t *testing.T) {
	t.Setenv("N8N_WEBHOOK_URL", "")
	t.Setenv("N8N_API_KEY", "")
	t.Setenv("RELAY_CONFIG_FILE", "")

	resolver := NewResolver(setupLogger(t))

	assert.False(t, resolver.Resolve().IsConfigured())
}

func TestResolver_FileDefaultsWithEnvOverride(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "relay.yml")
	content := "webhook_url: https://file.example.com/webhook\napi_key: file-key\n"
	if err := os.WriteFile(configFile, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("RELAY_CONFIG_FILE", configFile)
	t.Setenv("N8N_WEBHOOK_URL", "")
	t.Setenv("N8N_API_KEY", "")

	resolver := NewResolver(setupLogger(t))
	cfg := resolver.Resolve()
	assert.Equal(t, "https://file.example.com/webhook", cfg.WebhookURL)
	assert.Equal(t, "file-key", cfg.APIKey)

	// Environment values take precedence over the file layer.
	t.Setenv("N8N_WEBHOOK_URL", "https://env.example.com/webhook")
	assert.Equal(t, "https://env.example.com/webhook", resolver.Resolve().WebhookURL)
	assert.Equal(t, "file-key", resolver.Resolve().APIKey)
}

func TestResolver_UnreadableFileFallsBackToEnvironment(t *testing.T) {
	t.Setenv("RELAY_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yml"))
	t.Setenv("N8N_WEBHOOK_URL", "https://env.example.com/webhook")
	t.Setenv("N8N_API_KEY", "")

	resolver := NewResolver(setupLogger(t))

	assert.Equal(t, "https://env.example.com/webhook", resolver.Resolve().WebhookURL)
}

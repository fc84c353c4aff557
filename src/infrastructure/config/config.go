package config

import (
	"os"

	logger "n8n-relay-api/src/infrastructure/logger"
	"n8n-relay-api/src/infrastructure/utils"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// RelayConfig holds the downstream webhook settings. The webhook URL is
// required; the API key is optional. Both are read-only after resolution.
type RelayConfig struct {
	WebhookURL string `yaml:"webhook_url"`
	APIKey     string `yaml:"api_key"`
}

// IsConfigured reports whether the downstream webhook URL is known.
func (c RelayConfig) IsConfigured() bool {
	return c.WebhookURL != ""
}

// Resolver supplies the relay configuration at request time.
type Resolver interface {
	Resolve() RelayConfig
}

type envResolver struct {
	fileDefaults RelayConfig
}

// NewResolver builds a resolver that reads N8N_WEBHOOK_URL and N8N_API_KEY
// from the environment on every call, falling back to values from the
// optional YAML file named by RELAY_CONFIG_FILE. The file is read once at
// startup; a missing or unreadable file only disables the fallback layer.
func NewResolver(loggerInstance *logger.Logger) Resolver {
	resolver := &envResolver{}
	configFile := utils.GetEnv("RELAY_CONFIG_FILE", "")
	if configFile == "" {
		return resolver
	}
	content, err := os.ReadFile(configFile)
	if err != nil {
		loggerInstance.Warn("Couldn't read relay config file, using environment only",
			zap.String("file", configFile), zap.Error(err))
		return resolver
	}
	if err := yaml.Unmarshal(content, &resolver.fileDefaults); err != nil {
		loggerInstance.Warn("Couldn't parse relay config file, using environment only",
			zap.String("file", configFile), zap.Error(err))
		resolver.fileDefaults = RelayConfig{}
	}
	return resolver
}

func (r *envResolver) Resolve() RelayConfig {
	return RelayConfig{
		WebhookURL: utils.GetEnv("N8N_WEBHOOK_URL", r.fileDefaults.WebhookURL),
		APIKey:     utils.GetEnv("N8N_API_KEY", r.fileDefaults.APIKey),
	}
}

// StaticResolver returns a fixed configuration, used in tests and for
// composer runs that target a known relay.
type StaticResolver struct {
	Config RelayConfig
}

func (r StaticResolver) Resolve() RelayConfig {
	return r.Config
}

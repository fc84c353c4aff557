package n8n_client

import (
	domainDownstream "n8n-relay-api/src/domain/downstream"
	logger "n8n-relay-api/src/infrastructure/logger"

	"go.uber.org/zap"
)

// Repository implements the domainDownstream.IDownstreamService interface
type Repository struct {
	client *N8NClient
	Logger *logger.Logger
}

// NewN8NRepository creates a new Repository
func NewN8NRepository(loggerInstance *logger.Logger) domainDownstream.IDownstreamService {
	return &Repository{
		client: NewN8NClient(loggerInstance),
		Logger: loggerInstance,
	}
}

// Trigger issues the single outbound call to the webhook
func (r *Repository) Trigger(url string, apiKey string, payload []byte) (*domainDownstream.CallResult, error) {
	r.Logger.Info("Repository: Triggering n8n webhook",
		zap.Int("payloadBytes", len(payload)),
		zap.Bool("withAPIKey", apiKey != ""))

	statusCode, body, err := r.client.Post(url, apiKey, payload)
	if err != nil {
		return nil, err
	}
	return &domainDownstream.CallResult{
		StatusCode: statusCode,
		Body:       body,
	}, nil
}

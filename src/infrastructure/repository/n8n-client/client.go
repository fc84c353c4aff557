package n8n_client

import (
	"bytes"
	"io"
	"net/http"

	logger "n8n-relay-api/src/infrastructure/logger"

	"go.uber.org/zap"
)

const apiKeyHeader = "X-N8N-API-KEY"

// N8NClient performs the single HTTP POST to an n8n webhook. No retry and no
// timeout beyond the transport's own default; a non-responsive webhook is a
// hard failure.
type N8NClient struct {
	httpClient *http.Client
	Logger     *logger.Logger
}

func NewN8NClient(loggerInstance *logger.Logger) *N8NClient {
	return &N8NClient{
		httpClient: &http.Client{},
		Logger:     loggerInstance,
	}
}

// Post sends the payload to the webhook URL and captures the response status
// and body. The body read is best-effort; a read failure leaves it empty.
func (c *N8NClient) Post(url string, apiKey string, payload []byte) (int, []byte, error) {
	request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		request.Header.Set(apiKeyHeader, apiKey)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return 0, nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		c.Logger.Warn("Couldn't read n8n webhook response body", zap.Error(err))
		body = nil
	}
	return response.StatusCode, body, nil
}

package trigger

import (
	"encoding/json"
	"time"

	"n8n-relay-api/src/domain/common"
	"n8n-relay-api/src/domain/downstream"
	"n8n-relay-api/src/domain/outbound"
	"n8n-relay-api/src/infrastructure/config"
	logger "n8n-relay-api/src/infrastructure/logger"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"
)

// TriggerRequest represents a request to relay an outbound message
type TriggerRequest struct {
	WorkflowTag  string
	Recipients   []string
	Message      string
	MediaURL     string
	WorkflowVars json.RawMessage
	SendAt       string
	Origin       string
}

// TriggerResponse represents the outcome of a successful relay
type TriggerResponse struct {
	Message     string
	N8NResponse json.RawMessage
}

// ITriggerUseCase defines the interface for the relay pipeline
type ITriggerUseCase interface {
	Trigger(request *TriggerRequest) (*TriggerResponse, *outbound.RelayError)
}

// TriggerUseCase implements the ITriggerUseCase interface
type TriggerUseCase struct {
	configResolver    config.Resolver
	downstreamService downstream.IDownstreamService
	commonService     common.CommonService
	Logger            *logger.Logger
}

// NewTriggerUseCase creates a new TriggerUseCase
func NewTriggerUseCase(
	configResolver config.Resolver,
	downstreamService downstream.IDownstreamService,
	commonService common.CommonService,
	loggerInstance *logger.Logger,
) ITriggerUseCase {
	return &TriggerUseCase{
		configResolver:    configResolver,
		downstreamService: downstreamService,
		commonService:     commonService,
		Logger:            loggerInstance,
	}
}

// Trigger validates the request, enriches it with server-observed metadata
// and relays it to the configured n8n webhook exactly once.
func (u *TriggerUseCase) Trigger(request *TriggerRequest) (*TriggerResponse, *outbound.RelayError) {
	relayConfig := u.configResolver.Resolve()
	if !relayConfig.IsConfigured() {
		return nil, outbound.NewConfigurationError("N8N_WEBHOOK_URL is not configured")
	}

	normalized, issues := outbound.ParseRequest(&outbound.WireRequest{
		WorkflowTag:  request.WorkflowTag,
		Recipients:   request.Recipients,
		Message:      request.Message,
		MediaURL:     request.MediaURL,
		WorkflowVars: request.WorkflowVars,
		SendAt:       request.SendAt,
	})
	if len(issues) > 0 {
		return nil, outbound.NewValidationError(issues)
	}

	payload, err := u.enrich(normalized, request.Origin)
	if err != nil {
		return nil, outbound.NewValidationError([]string{err.Error()})
	}

	requestID := u.commonService.GenerateRequestID()
	result, err := u.downstreamService.Trigger(relayConfig.WebhookURL, relayConfig.APIKey, payload)
	if err != nil {
		u.Logger.Error("n8n webhook call failed",
			zap.Error(err),
			zap.String("requestID", requestID),
			zap.String("workflowTag", normalized.WorkflowTag))
		return nil, outbound.NewUpstreamUnavailableError(err)
	}
	if !result.Success() {
		u.Logger.Error("n8n webhook returned failure status",
			zap.Int("status", result.StatusCode),
			zap.String("requestID", requestID),
			zap.String("workflowTag", normalized.WorkflowTag))
		return nil, outbound.NewGatewayError(result.StatusCode, string(result.Body))
	}

	response := &TriggerResponse{Message: "Workflow triggered successfully"}
	if len(result.Body) > 0 && gjson.ValidBytes(result.Body) {
		response.N8NResponse = json.RawMessage(result.Body)
	}
	return response, nil
}

// enrich marshals the normalized payload and injects the server-owned fields.
// Injection happens after marshaling so a caller-supplied requestedAt or
// origin can never leak through.
func (u *TriggerUseCase) enrich(normalized *outbound.OutboundMessageRequest, origin string) ([]byte, error) {
	payload, err := json.Marshal(normalized)
	if err != nil {
		return nil, err
	}
	payload, err = sjson.SetBytes(payload, "requestedAt", time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	if origin != "" {
		payload, err = sjson.SetBytes(payload, "origin", origin)
		if err != nil {
			return nil, err
		}
	}
	return payload, nil
}

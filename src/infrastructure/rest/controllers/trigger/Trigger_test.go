package trigger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	triggerUseCase "n8n-relay-api/src/application/usecases/trigger"
	"n8n-relay-api/src/domain/common"
	"n8n-relay-api/src/domain/outbound"
	"n8n-relay-api/src/infrastructure/config"
	logger "n8n-relay-api/src/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// MockTriggerUseCase implements triggerUseCase.ITriggerUseCase for testing
type MockTriggerUseCase struct {
	triggerFunc func(*triggerUseCase.TriggerRequest) (*triggerUseCase.TriggerResponse, *outbound.RelayError)
	lastRequest *triggerUseCase.TriggerRequest
}

func (m *MockTriggerUseCase) Trigger(req *triggerUseCase.TriggerRequest) (*triggerUseCase.TriggerResponse, *outbound.RelayError) {
	m.lastRequest = req
	if m.triggerFunc != nil {
		return m.triggerFunc(req)
	}
	return &triggerUseCase.TriggerResponse{Message: "Workflow triggered successfully"}, nil
}

func setupLogger(t *testing.T) *logger.Logger {
	loggerInstance, err := logger.NewLogger()
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	return loggerInstance
}

func configuredResolver() config.Resolver {
	return config.StaticResolver{Config: config.RelayConfig{
		WebhookURL: "https://n8n.example.com/webhook/abc",
	}}
}

func performTrigger(controller ITriggerController, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/trigger", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	controller.Trigger(c)
	return w
}

func TestNewTriggerController(t *testing.T) {
	controller := NewTriggerController(common.NewCommonService(), configuredResolver(), &MockTriggerUseCase{}, setupLogger(t))

	if controller == nil {
		t.Error("Expected NewTriggerController to return a non-nil controller")
	}
}

func TestTriggerController_Success(t *testing.T) {
	mockUseCase := &MockTriggerUseCase{
		triggerFunc: func(req *triggerUseCase.TriggerRequest) (*triggerUseCase.TriggerResponse, *outbound.RelayError) {
			return &triggerUseCase.TriggerResponse{
				Message:     "Workflow triggered successfully",
				N8NResponse: json.RawMessage(`{"executionId":"42"}`),
			}, nil
		},
	}
	controller := NewTriggerController(common.NewCommonService(), configuredResolver(), mockUseCase, setupLogger(t))

	requestBody, _ := json.Marshal(TriggerRequest{
		WorkflowTag: "promo",
		Recipients:  []string{"15551234567"},
		Message:     "hi",
	})
	w := performTrigger(controller, requestBody, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response TriggerResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response.Message, "successfully")
	assert.JSONEq(t, `{"executionId":"42"}`, string(response.N8NResponse))
	assert.Empty(t, response.Issues)
}

func TestTriggerController_ForwardsOriginHeader(t *testing.T) {
	mockUseCase := &MockTriggerUseCase{}
	controller := NewTriggerController(common.NewCommonService(), configuredResolver(), mockUseCase, setupLogger(t))

	requestBody, _ := json.Marshal(TriggerRequest{
		WorkflowTag: "promo",
		Recipients:  []string{"15551234567"},
		Message:     "hi",
	})
	performTrigger(controller, requestBody, map[string]string{"Origin": "https://ops.example.com"})

	assert.Equal(t, "https://ops.example.com", mockUseCase.lastRequest.Origin)
}

func TestTriggerController_MalformedJSON(t *testing.T) {
	mockUseCase := &MockTriggerUseCase{}
	controller := NewTriggerController(common.NewCommonService(), configuredResolver(), mockUseCase, setupLogger(t))

	w := performTrigger(controller, []byte(`{"workflowTag": "promo",`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response TriggerResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response.Message, "not valid JSON")
	assert.NotEmpty(t, response.Issues)
	assert.Nil(t, mockUseCase.lastRequest)
}

func TestTriggerController_ValidationError(t *testing.T) {
	mockUseCase := &MockTriggerUseCase{
		triggerFunc: func(req *triggerUseCase.TriggerRequest) (*triggerUseCase.TriggerResponse, *outbound.RelayError) {
			return nil, outbound.NewValidationError([]string{
				"workflowTag is required",
				"at least one recipient is required",
				"message is required",
			})
		},
	}
	controller := NewTriggerController(common.NewCommonService(), configuredResolver(), mockUseCase, setupLogger(t))

	requestBody, _ := json.Marshal(TriggerRequest{})
	w := performTrigger(controller, requestBody, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response TriggerResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response.Issues, 3)
	assert.Contains(t, response.Issues[0], "workflowTag")
	assert.Contains(t, response.Issues[1], "recipient")
	assert.Contains(t, response.Issues[2], "message")
}

func TestTriggerController_MissingConfiguration(t *testing.T) {
	mockUseCase := &MockTriggerUseCase{}
	controller := NewTriggerController(common.NewCommonService(), config.StaticResolver{}, mockUseCase, setupLogger(t))

	requestBody, _ := json.Marshal(TriggerRequest{
		WorkflowTag: "promo",
		Recipients:  []string{"15551234567"},
		Message:     "hi",
	})
	w := performTrigger(controller, requestBody, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response TriggerResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response.Message, "N8N_WEBHOOK_URL")
	assert.Nil(t, mockUseCase.lastRequest)
}

// The configuration check comes before the body parse: an unconfigured relay
// answers 500 for a malformed body, not 400.
func TestTriggerController_MissingConfigurationPrecedesBodyParse(t *testing.T) {
	mockUseCase := &MockTriggerUseCase{}
	controller := NewTriggerController(common.NewCommonService(), config.StaticResolver{}, mockUseCase, setupLogger(t))

	w := performTrigger(controller, []byte(`{"workflowTag": "promo",`), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response TriggerResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response.Message, "N8N_WEBHOOK_URL")
	assert.Nil(t, mockUseCase.lastRequest)
}

func TestTriggerController_GatewayError(t *testing.T) {
	mockUseCase := &MockTriggerUseCase{
		triggerFunc: func(req *triggerUseCase.TriggerRequest) (*triggerUseCase.TriggerResponse, *outbound.RelayError) {
			return nil, outbound.NewGatewayError(http.StatusInternalServerError, "boom")
		},
	}
	controller := NewTriggerController(common.NewCommonService(), configuredResolver(), mockUseCase, setupLogger(t))

	requestBody, _ := json.Marshal(TriggerRequest{
		WorkflowTag: "promo",
		Recipients:  []string{"15551234567"},
		Message:     "hi",
	})
	w := performTrigger(controller, requestBody, nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var response TriggerResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, []string{"boom"}, response.Issues)
}

func TestTriggerController_UpstreamUnavailable(t *testing.T) {
	mockUseCase := &MockTriggerUseCase{
		triggerFunc: func(req *triggerUseCase.TriggerRequest) (*triggerUseCase.TriggerResponse, *outbound.RelayError) {
			return nil, &outbound.RelayError{
				Kind:    outbound.KindUpstreamUnavailable,
				Message: "n8n webhook is unreachable",
				Issues:  []string{"connection refused"},
			}
		},
	}
	controller := NewTriggerController(common.NewCommonService(), configuredResolver(), mockUseCase, setupLogger(t))

	requestBody, _ := json.Marshal(TriggerRequest{
		WorkflowTag: "promo",
		Recipients:  []string{"15551234567"},
		Message:     "hi",
	})
	w := performTrigger(controller, requestBody, nil)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)

	var response TriggerResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, []string{"connection refused"}, response.Issues)
}

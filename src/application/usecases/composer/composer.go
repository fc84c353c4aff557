package composer

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"n8n-relay-api/src/domain/outbound"
	logger "n8n-relay-api/src/infrastructure/logger"

	"go.uber.org/zap"
)

// State is the composer submission lifecycle state.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Outcome is the result of one submission attempt.
type Outcome struct {
	State       State
	Message     string
	Issues      []string
	N8NResponse json.RawMessage
}

type relayResponse struct {
	Message     string          `json:"message"`
	Issues      []string        `json:"issues"`
	N8NResponse json.RawMessage `json:"n8nResponse"`
}

// IComposerUseCase defines the interface for the operator-facing composer
type IComposerUseCase interface {
	SetDraft(draft outbound.FormDraft)
	Draft() outbound.FormDraft
	State() State
	CanSubmit() bool
	Submit() *Outcome
	Reset()
}

// Composer collects raw operator input, validates it client-side and submits
// the normalized payload to the relay endpoint. It never retries; any
// transport failure is reported as an error outcome, never as success.
type Composer struct {
	endpoint   string
	httpClient *http.Client
	Logger     *logger.Logger
	draft      outbound.FormDraft
	state      State
}

// NewComposer creates a Composer targeting the given relay endpoint URL.
func NewComposer(endpoint string, loggerInstance *logger.Logger) IComposerUseCase {
	return &Composer{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		Logger:     loggerInstance,
		state:      StateIdle,
	}
}

// SetDraft records an edit. Edits do not re-run validation; they only reset a
// finished submission back to idle.
func (c *Composer) SetDraft(draft outbound.FormDraft) {
	c.draft = draft
	if c.state == StateSuccess || c.state == StateError {
		c.state = StateIdle
	}
}

func (c *Composer) Draft() outbound.FormDraft {
	return c.draft
}

func (c *Composer) State() State {
	return c.state
}

// CanSubmit recomputes submittability from the current raw draft by running
// the client-facing validation, including a best-effort parse of the
// free-form workflow variables blob.
func (c *Composer) CanSubmit() bool {
	_, issues := outbound.ParseForm(c.draft)
	return len(issues) == 0
}

// Reset returns the composer to idle for a fresh submission.
func (c *Composer) Reset() {
	c.state = StateIdle
}

// Submit validates the draft, posts the normalized payload to the relay
// endpoint and maps the response to a success or error outcome.
func (c *Composer) Submit() *Outcome {
	c.state = StateSubmitting

	request, issues := outbound.ParseForm(c.draft)
	if len(issues) > 0 {
		return c.finish(&Outcome{
			State:   StateError,
			Message: "Please fix the highlighted fields",
			Issues:  issues,
		})
	}

	body, err := json.Marshal(request)
	if err != nil {
		return c.finish(&Outcome{State: StateError, Message: err.Error()})
	}

	httpResponse, err := c.httpClient.Post(c.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		c.Logger.Error("Relay endpoint unreachable", zap.Error(err), zap.String("endpoint", c.endpoint))
		return c.finish(&Outcome{State: StateError, Message: err.Error()})
	}
	defer httpResponse.Body.Close()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return c.finish(&Outcome{State: StateError, Message: err.Error()})
	}

	var relay relayResponse
	if err := json.Unmarshal(responseBody, &relay); err != nil {
		return c.finish(&Outcome{State: StateError, Message: "Relay endpoint returned an unreadable response"})
	}

	if httpResponse.StatusCode != http.StatusOK {
		return c.finish(&Outcome{
			State:   StateError,
			Message: relay.Message,
			Issues:  relay.Issues,
		})
	}
	return c.finish(&Outcome{
		State:       StateSuccess,
		Message:     relay.Message,
		N8NResponse: relay.N8NResponse,
	})
}

func (c *Composer) finish(outcome *Outcome) *Outcome {
	c.state = outcome.State
	return outcome
}

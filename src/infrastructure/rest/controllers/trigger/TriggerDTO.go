package trigger

import "encoding/json"

type TriggerRequest struct {
	WorkflowTag  string          `json:"workflowTag"`
	Recipients   []string        `json:"recipients"`
	Message      string          `json:"message"`
	MediaURL     string          `json:"mediaUrl"`
	WorkflowVars json.RawMessage `json:"workflowVars"`
	SendAt       string          `json:"sendAt"`
}

type TriggerResponse struct {
	Message     string          `json:"message"`
	Issues      []string        `json:"issues,omitempty"`
	N8NResponse json.RawMessage `json:"n8nResponse,omitempty"`
}

package outbound

// OutboundMessageRequest is the canonical entity relayed to the automation
// webhook. Instances are created per submission, validated, forwarded and
// discarded; nothing is persisted.
//
// RequestedAt and origin are server-owned and injected into the outbound
// payload during enrichment; they are deliberately absent from this struct so
// that caller-supplied values can never survive normalization.
type OutboundMessageRequest struct {
	WorkflowTag  string            `json:"workflowTag" validate:"required"`
	Recipients   []string          `json:"recipients" validate:"min=1,dive,recipient"`
	Message      string            `json:"message" validate:"required"`
	MediaURL     string            `json:"mediaUrl,omitempty" validate:"omitempty,url"`
	WorkflowVars map[string]string `json:"workflowVars,omitempty"`
	SendAt       string            `json:"sendAt,omitempty" validate:"omitempty,parseable_datetime"`
}

// FormDraft is the raw operator input collected by the composer before any
// normalization: recipients as one delimited string, workflow variables as a
// free-form JSON text blob.
type FormDraft struct {
	WorkflowTag  string
	Recipients   string
	Message      string
	MediaURL     string
	WorkflowVars string
	SendAt       string
}

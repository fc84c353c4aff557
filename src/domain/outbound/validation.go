package outbound

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

// WireRequest is the structured shape accepted by the relay endpoint. The
// workflowVars field is kept raw so that its object-shape check produces a
// validation issue instead of a JSON binding failure.
type WireRequest struct {
	WorkflowTag  string          `json:"workflowTag"`
	Recipients   []string        `json:"recipients"`
	Message      string          `json:"message"`
	MediaURL     string          `json:"mediaUrl"`
	WorkflowVars json.RawMessage `json:"workflowVars"`
	SendAt       string          `json:"sendAt"`
}

var recipientPattern = regexp.MustCompile(`^\d{6,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("recipient", func(fl validator.FieldLevel) bool {
		return recipientPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("parseable_datetime", func(fl validator.FieldLevel) bool {
		_, err := dateparse.ParseAny(fl.Field().String())
		return err == nil
	})
	return v
}

// ParseForm normalizes raw operator input into an OutboundMessageRequest.
// The recipients string is split on commas and newlines with blanks filtered,
// and the workflow variables blob is parsed as JSON before the shared
// constraint set runs. On failure it returns every violation, not just the
// first.
func ParseForm(draft FormDraft) (*OutboundMessageRequest, []string) {
	return buildRequest(draft.WorkflowTag, splitRecipients(draft.Recipients), draft.Message, draft.MediaURL, draft.WorkflowVars, draft.SendAt)
}

// ParseRequest normalizes the structured wire shape through the same
// constraint set as ParseForm. Any payload accepted by ParseForm is accepted
// here as well.
func ParseRequest(in *WireRequest) (*OutboundMessageRequest, []string) {
	return buildRequest(in.WorkflowTag, in.Recipients, in.Message, in.MediaURL, string(in.WorkflowVars), in.SendAt)
}

func buildRequest(workflowTag string, recipients []string, message, mediaURL, workflowVarsRaw, sendAt string) (*OutboundMessageRequest, []string) {
	request := &OutboundMessageRequest{
		WorkflowTag: strings.TrimSpace(workflowTag),
		Message:     strings.TrimSpace(message),
		MediaURL:    strings.TrimSpace(mediaURL),
		SendAt:      strings.TrimSpace(sendAt),
	}
	for _, recipient := range recipients {
		request.Recipients = append(request.Recipients, strings.TrimSpace(recipient))
	}

	workflowVars, workflowVarsIssue := coerceWorkflowVars(workflowVarsRaw)
	request.WorkflowVars = workflowVars

	var issues []string
	if err := validate.Struct(request); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldError := range validationErrors {
				issues = append(issues, issueFor(fieldError))
			}
		} else {
			issues = append(issues, err.Error())
		}
	}
	if workflowVarsIssue != "" {
		issues = append(issues, workflowVarsIssue)
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return request, nil
}

// coerceWorkflowVars checks the raw metadata blob for JSON-object shape and
// coerces every value to its string representation. Absent and null inputs are
// both treated as "no variables".
func coerceWorkflowVars(raw string) (map[string]string, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return nil, ""
	}
	if !gjson.Valid(trimmed) {
		return nil, "workflowVars is not valid JSON"
	}
	parsed := gjson.Parse(trimmed)
	if !parsed.IsObject() {
		return nil, "workflowVars must be a JSON object"
	}
	workflowVars := make(map[string]string)
	parsed.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			workflowVars[key.String()] = value.String()
		} else {
			workflowVars[key.String()] = value.Raw
		}
		return true
	})
	return workflowVars, ""
}

// splitRecipients breaks the delimited form field apart and filters blanks.
// The filtering belongs to the split only: a structured wire payload carrying
// a whitespace-only recipient element must fail validation, not be repaired.
func splitRecipients(raw string) []string {
	var recipients []string
	for _, field := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	}) {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}

func issueFor(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "min":
		return "at least one recipient is required"
	case "recipient":
		return fmt.Sprintf("%s must be a phone number of 6 to 15 digits", fieldError.Field())
	case "url":
		return "mediaUrl must be a valid URL"
	case "parseable_datetime":
		return fmt.Sprintf("sendAt %q is not a valid date/time", fieldError.Value())
	}
	return fmt.Sprintf("%s is invalid", fieldError.Field())
}

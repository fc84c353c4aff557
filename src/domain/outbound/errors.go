package outbound

import (
	"fmt"
	"net/http"
)

// Kind classifies relay failures.
type Kind int

const (
	// KindConfiguration means the downstream webhook URL is unresolved.
	KindConfiguration Kind = iota
	// KindMalformedInput means the request body was not valid JSON.
	KindMalformedInput
	// KindValidation means the payload violated the schema.
	KindValidation
	// KindGateway means the downstream webhook answered with a failure status.
	KindGateway
	// KindUpstreamUnavailable means the downstream webhook could not be reached.
	KindUpstreamUnavailable
)

// RelayError is the normalized failure outcome of the relay pipeline. Issues
// carries the full ordered diagnostic list; none of these outcomes are ever
// retried by the relay itself.
type RelayError struct {
	Kind    Kind
	Message string
	Issues  []string
}

func (e *RelayError) Error() string {
	return e.Message
}

// HTTPStatus maps the failure kind to its response status code.
func (e *RelayError) HTTPStatus() int {
	switch e.Kind {
	case KindMalformedInput:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindGateway:
		return http.StatusBadGateway
	case KindUpstreamUnavailable:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func NewConfigurationError(message string) *RelayError {
	return &RelayError{Kind: KindConfiguration, Message: message}
}

func NewMalformedInputError(parseErr error) *RelayError {
	return &RelayError{
		Kind:    KindMalformedInput,
		Message: "Request body is not valid JSON",
		Issues:  []string{parseErr.Error()},
	}
}

func NewValidationError(issues []string) *RelayError {
	return &RelayError{
		Kind:    KindValidation,
		Message: "Request validation failed",
		Issues:  issues,
	}
}

// NewGatewayError surfaces a downstream failure status together with the raw
// response body, which may be empty.
func NewGatewayError(statusCode int, body string) *RelayError {
	relayError := &RelayError{
		Kind:    KindGateway,
		Message: fmt.Sprintf("n8n webhook returned status %d", statusCode),
	}
	if body != "" {
		relayError.Issues = []string{body}
	}
	return relayError
}

func NewUpstreamUnavailableError(transportErr error) *RelayError {
	return &RelayError{
		Kind:    KindUpstreamUnavailable,
		Message: "n8n webhook is unreachable",
		Issues:  []string{transportErr.Error()},
	}
}

package downstream

// CallResult captures the downstream webhook's answer: the HTTP status and
// the raw response body, read best-effort.
type CallResult struct {
	StatusCode int
	Body       []byte
}

// Success reports whether the downstream answered with a 2xx status.
func (r *CallResult) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IDownstreamService is the port to the opaque automation webhook. Exactly one
// call is issued per valid relay request; a returned error means the webhook
// could not be reached at the transport level.
type IDownstreamService interface {
	Trigger(url string, apiKey string, payload []byte) (*CallResult, error)
}

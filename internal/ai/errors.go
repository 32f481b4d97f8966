package ai

import (
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ExternalServiceError kinds, used by the HTTP layer to pick a status code
// and by operators to tell quota problems from bad credentials.
const (
	KindAuth       = "auth"
	KindRateLimit  = "rate_limit"
	KindTransport  = "transport"
	KindBadPayload = "bad_payload"
)

// ExternalServiceError wraps a failure talking to, or interpreting, the AI
// service. The caller decides whether to retry; the converter never does.
type ExternalServiceError struct {
	Kind string
	Err  error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("ai service error (%s): %v", e.Kind, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// classifyServiceError buckets an OpenAI client error by its HTTP status.
func classifyServiceError(err error) *ExternalServiceError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403:
			return &ExternalServiceError{Kind: KindAuth, Err: err}
		case apiErr.HTTPStatusCode == 429:
			return &ExternalServiceError{Kind: KindRateLimit, Err: err}
		}
	}
	return &ExternalServiceError{Kind: KindTransport, Err: err}
}

package llm

import (
	"errors"
	"fmt"
)

var (
	ErrNoMessages       = errors.New("at least one message is required")
	ErrUnsupportedModel = errors.New("unsupported model")
)

// ConfigurationError means the client cannot run at all, e.g. no credential.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "llm configuration error: " + e.Reason
}

// UpstreamError carries a non-2xx answer from the completion service.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("completion request failed with status %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps network-level failures and unreadable responses.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("completion %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err (or anything it wraps) is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

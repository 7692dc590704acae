package tts

import (
	"fmt"
	"strings"
)

// AuthError reports a missing or rejected credential for the remote backend.
// It is detected before any network call when possible and is never worth
// retrying.
type AuthError struct {
	Backend string
	Reason  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s auth: %s", e.Backend, e.Reason)
}

// ProviderError reports a non-success response from the remote backend,
// carrying the HTTP status and response body for diagnostics.
type ProviderError struct {
	Backend    string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Backend, e.StatusCode, e.Body)
}

// QuotaExhausted reports whether the provider rejected the call because the
// account's quota ran out, so callers can suggest switching backends.
func (e *ProviderError) QuotaExhausted() bool {
	return strings.Contains(e.Body, "quota_exceeded")
}

// SynthesisError reports a local-backend inference failure.
type SynthesisError struct {
	Backend string
	Err     error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("%s synthesis: %v", e.Backend, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}

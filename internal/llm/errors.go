package llm

import "errors"

var (
	// ErrAuth indicates the configured credential is missing or was rejected
	// by the provider. Not retryable without a config change.
	ErrAuth = errors.New("llm auth failed")

	// ErrTransient indicates a network or provider failure. The caller may
	// retry manually; nothing in this repository retries automatically.
	ErrTransient = errors.New("llm service unavailable")
)

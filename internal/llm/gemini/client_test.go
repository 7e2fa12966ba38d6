package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"

	"jobsearch-backend/internal/llm"
)

func TestMapErrorAPIKeyRejected(t *testing.T) {
	err := mapError(genai.APIError{Code: 403, Message: "API key not valid"})
	if !errors.Is(err, llm.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}

func TestMapErrorServerFailure(t *testing.T) {
	err := mapError(genai.APIError{Code: 503, Message: "service overloaded"})
	if !errors.Is(err, llm.ErrTransient) {
		t.Fatalf("expected ErrTransient, got %v", err)
	}
}

func TestMapErrorPlainNetworkError(t *testing.T) {
	err := mapError(fmt.Errorf("dial tcp: connection refused"))
	if !errors.Is(err, llm.ErrTransient) {
		t.Fatalf("expected ErrTransient, got %v", err)
	}
}

func TestNewClientRequiresCredential(t *testing.T) {
	_, err := NewClient(context.Background(), "", "gemini-2.5-flash")
	if !errors.Is(err, llm.ErrAuth) {
		t.Fatalf("expected ErrAuth for missing key, got %v", err)
	}
}

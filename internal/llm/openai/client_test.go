package openai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobsearch-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		srv.Close()
		t.Fatalf("NewClient: %v", err)
	}
	client.apiURL = srv.URL
	return client, srv.Close
}

func TestCompleteReturnsContent(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Strengths: solid Go experience."}}]}`))
	})
	defer done()

	got, err := client.Complete(context.Background(), "Analyze this resume")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Strengths: solid Go experience." {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestCompleteMapsUnauthorizedToAuthError(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	})
	defer done()

	_, err := client.Complete(context.Background(), "hello")
	if !errors.Is(err, llm.ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}

func TestCompleteMapsServerErrorToTransient(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer done()

	_, err := client.Complete(context.Background(), "hello")
	if !errors.Is(err, llm.ErrTransient) {
		t.Fatalf("expected ErrTransient, got %v", err)
	}
}

func TestCompleteEmptyChoicesIsTransient(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	defer done()

	_, err := client.Complete(context.Background(), "hello")
	if !errors.Is(err, llm.ErrTransient) {
		t.Fatalf("expected ErrTransient, got %v", err)
	}
}

func TestNewClientRequiresCredential(t *testing.T) {
	_, err := NewClient("", "gpt-4o-mini")
	if !errors.Is(err, llm.ErrAuth) {
		t.Fatalf("expected ErrAuth for missing key, got %v", err)
	}
}

func TestIsGPT5(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{name: "gpt5", model: "gpt-5", want: true},
		{name: "gpt5 variant", model: "gpt-5-mini", want: true},
		{name: "gpt5 uppercase", model: " GPT-5o ", want: true},
		{name: "gpt4", model: "gpt-4o", want: false},
		{name: "empty", model: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := isGPT5(tt.model); got != tt.want {
				t.Fatalf("isGPT5(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

package llm

import "context"

// Client abstracts the external generative-language service. Implementations
// send one prompt and return the model's text response; there is no batching,
// caching, or automatic retry at this layer.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

package llm

import "context"

// Client sends a single prompt to a chat-completion model and returns the raw completion text.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

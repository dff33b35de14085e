package llm

import (
	"context"
	"fmt"
)

// DefaultMaxTokens applies when a caller leaves SendOptions.MaxTokens unset.
const DefaultMaxTokens = 4096

type SendOptions struct {
	SystemPrompt string
	MaxTokens    int
	// Empty selects the configured or provider default model.
	Model string
}

// Gateway sends a single user message and returns the generated text.
type Gateway interface {
	SendMessage(ctx context.Context, userMessage string, opts SendOptions) (string, error)
}

// GatewayFunc adapts a function to Gateway.
type GatewayFunc func(ctx context.Context, userMessage string, opts SendOptions) (string, error)

func (f GatewayFunc) SendMessage(ctx context.Context, userMessage string, opts SendOptions) (string, error) {
	return f(ctx, userMessage, opts)
}

type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Latency     string `json:"latency,omitempty"`
}

// Provider is a vendor-specific Gateway.
type Provider interface {
	Gateway
	Name() string
	DefaultModel() string
	Models() []ModelInfo
}

// Credentials resolves API keys by their setting name, e.g. "OPENAI_API_KEY".
type Credentials interface {
	APIKey(name string) string
}

// GenerationError wraps any failure of a Gateway call.
type GenerationError struct {
	Provider string
	Model    string
	Err      error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Model != "" {
		return fmt.Sprintf("%s (%s): %v", e.Provider, e.Model, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func wrapErr(provider, model string, err error) error {
	if err == nil {
		return nil
	}
	return &GenerationError{Provider: provider, Model: model, Err: err}
}

func maxTokensOrDefault(n int) int {
	if n <= 0 {
		return DefaultMaxTokens
	}
	return n
}

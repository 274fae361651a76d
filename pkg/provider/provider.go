// Package provider abstracts a single external text-completion backend.
// Providers issue exactly one request per Complete call; retry policy is
// the caller's concern, so SDK-level retries are disabled.
package provider

import (
	"context"
	"fmt"
)

// Request is a chat-style completion request.
type Request struct {
	System string
	Prompt string
}

// Usage reports token accounting when the backend supplies it.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// Response carries the raw text returned by the backend.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Provider issues completion requests against one configured backend.
type Provider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, req Request) (*Response, error)
}

// New creates the provider selected by cfg.Name. The configuration must
// already be finalized. A missing credential is not an error here; it
// surfaces as KindAuthMissing on the first Complete call.
func New(cfg *Config) (Provider, error) {
	switch cfg.Name {
	case Groq, OpenRouter:
		return newOpenAI(cfg), nil
	case Azure:
		return newAzure(cfg)
	case Anthropic:
		return newAnthropic(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Name)
	}
}

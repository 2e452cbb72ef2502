package services

import (
	"CaptionRelay/config/environment"
	"context"
	"errors"
	"fmt"
)

var (
	// ErrProviderNotConfigured is returned for every call when no API key was set.
	ErrProviderNotConfigured = errors.New("provider api key is not set")
	// ErrEmptyCompletion means the provider answered without any text.
	ErrEmptyCompletion = errors.New("provider returned no text")
)

// TextGenerator generates text from a prompt. Implementations must be safe
// for concurrent use.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ProviderError wraps an upstream failure with the HTTP status the provider
// answered with, or 0 when the call never got a response.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s provider returned status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type unconfiguredGenerator struct {
	provider string
}

func (g unconfiguredGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", &ProviderError{Provider: g.provider, Err: ErrProviderNotConfigured}
}

// NewTextGenerator builds the client for the configured provider. Without an
// API key it returns a generator that fails every call, so a missing key
// surfaces at the provider boundary instead of at startup.
func NewTextGenerator(ctx context.Context, cfg *environment.Config) (TextGenerator, error) {
	if cfg.APIKey() == "" {
		return unconfiguredGenerator{provider: cfg.Provider}, nil
	}

	switch cfg.Provider {
	case environment.ProviderGemini:
		return NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.Model)
	case environment.ProviderOpenAI:
		return NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

package llm

import (
	"context"
	"fmt"

	"mindflow/internal/config"
	"mindflow/internal/domain"
)

// NewTextGenerator builds the generator selected by cfg.Provider. Provider "none" (or
// empty) returns a nil generator, which makes every assessment use the fallback message.
// The returned close func is never nil.
func NewTextGenerator(ctx context.Context, cfg config.LLMConfig) (domain.TextGenerator, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Provider {
	case "", "none":
		return nil, noop, nil
	case "openai":
		g, err := NewOpenAIGenerator(cfg.APIKey, cfg.Model, cfg.ServerURL, cfg.Timeout, cfg.Temperature)
		if err != nil {
			return nil, noop, err
		}
		return g, noop, nil
	case "ollama":
		g, err := NewOllamaGenerator(cfg.ServerURL, cfg.Model, cfg.Timeout, cfg.Temperature)
		if err != nil {
			return nil, noop, err
		}
		return g, noop, nil
	case "gemini":
		g, err := NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model, cfg.Temperature)
		if err != nil {
			return nil, noop, err
		}
		return g, g.Close, nil
	default:
		return nil, noop, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}

package domain

import (
	"context"
	"errors"
)

// ErrEmptyGeneration is returned when a provider answers with no usable text.
var ErrEmptyGeneration = errors.New("text generation returned no content")

// TextGenerator is the port for the external text-generation service. Implementations
// make a single request and honour ctx cancellation.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, prompt string) (string, error)
}

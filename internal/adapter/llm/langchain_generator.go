package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mindflow/internal/domain"
	"mindflow/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// LangchainGenerator implements domain.TextGenerator on top of any langchaingo model.
type LangchainGenerator struct {
	model       llms.Model
	name        string
	temperature float64
}

// NewLangchainGenerator wraps an already constructed langchaingo model.
func NewLangchainGenerator(model llms.Model, name string, temperature float64) *LangchainGenerator {
	return &LangchainGenerator{model: model, name: name, temperature: temperature}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// NewOpenAIGenerator creates a generator backed by the OpenAI chat completions API.
// baseURL may be empty to use the public endpoint.
func NewOpenAIGenerator(apiKey, modelName, baseURL string, timeout time.Duration, temperature float64) (*LangchainGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
		openai.WithHTTPClient(newHTTPClient(timeout)),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI LLM client: %w", err)
	}
	return NewLangchainGenerator(model, "openai/"+modelName, temperature), nil
}

// NewOllamaGenerator creates a generator backed by an Ollama server.
func NewOllamaGenerator(serverURL, modelName string, timeout time.Duration, temperature float64) (*LangchainGenerator, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}
	model, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(modelName),
		ollama.WithHTTPClient(newHTTPClient(timeout)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama LLM client: %w", err)
	}
	return NewLangchainGenerator(model, "ollama/"+modelName, temperature), nil
}

// Generate implements domain.TextGenerator
func (g *LangchainGenerator) Generate(ctx context.Context, systemPrompt, prompt string) (string, error) {
	l := logger.Get()

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	resp, err := g.model.GenerateContent(ctx, messages, llms.WithTemperature(g.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Warn("LLM request timed out", zap.String("model", g.name), zap.Error(err))
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", domain.ErrEmptyGeneration
	}

	text := cleanModelOutput(resp.Choices[0].Content)
	if text == "" {
		return "", domain.ErrEmptyGeneration
	}
	l.Debug("LLM response received", zap.String("model", g.name), zap.Int("length", len(text)))
	return text, nil
}

// cleanModelOutput drops a leading <think>...</think> block that reasoning models emit
// and trims surrounding whitespace.
func cleanModelOutput(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
		}
	}
	return strings.TrimSpace(cleaned)
}

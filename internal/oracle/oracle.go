// Package oracle generates AI interpretations of readings through one of
// three providers: Google Gemini, OpenRouter, or a local Ollama server.
package oracle

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/arcanaland/oracle/internal/config"
)

// Client generates text from a prompt with a given model.
type Client interface {
	Generate(ctx context.Context, prompt, model string) (string, error)
}

// Default models per provider.
const (
	defaultGeminiModel     = "gemini-3-flash"
	defaultOpenRouterModel = "z-ai/glm-4.5-air:free"
	defaultOllamaModel     = "mistral"
)

// Cloud providers answer quickly; a local model may need to load first.
const (
	cloudTimeout = 30 * time.Second
	localTimeout = 300 * time.Second
)

// Oracle holds a configured provider client.
type Oracle struct {
	Provider string

	client       Client
	defaultModel string
	timeout      time.Duration
}

// New selects and configures a provider. Cloud providers require their API
// key to be present in the configuration.
func New(cfg *config.Config, provider, model string) (*Oracle, error) {
	if provider == "" {
		provider = cfg.Provider
	}
	if model == "" {
		model = cfg.Model
	}

	o := &Oracle{Provider: provider}
	switch provider {
	case "gemini":
		if cfg.GoogleAIAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_AI_API_KEY must be set for the gemini provider")
		}
		o.client = NewGemini(cfg.GoogleAIAPIKey)
		o.defaultModel = defaultGeminiModel
		o.timeout = cloudTimeout
	case "openrouter":
		if cfg.OpenRouterAPIKey == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY must be set for the openrouter provider")
		}
		o.client = NewOpenRouter(cfg.OpenRouterAPIKey)
		o.defaultModel = defaultOpenRouterModel
		o.timeout = cloudTimeout
	case "ollama":
		client, err := NewOllama(cfg.OllamaHost)
		if err != nil {
			return nil, err
		}
		o.client = client
		o.defaultModel = defaultOllamaModel
		o.timeout = localTimeout
	default:
		return nil, fmt.Errorf("unsupported provider %q (valid: gemini, openrouter, ollama)", provider)
	}
	if model != "" {
		o.defaultModel = model
	}
	return o, nil
}

// Interpret sends the reading prompt to the provider and returns the
// interpretation text.
func (o *Oracle) Interpret(ctx context.Context, p Prompt, model string) (string, error) {
	if model == "" {
		model = o.defaultModel
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	log.Debug().Str("provider", o.Provider).Str("model", model).Msg("requesting interpretation")
	text, err := o.client.Generate(ctx, p.Build(), model)
	if err != nil {
		return "", fmt.Errorf("%s interpretation: %w", o.Provider, err)
	}
	return text, nil
}

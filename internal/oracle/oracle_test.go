package oracle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/oracle/internal/config"
)

func TestPromptBuild(t *testing.T) {
	p := Prompt{
		Invocation: "By first light I ask.",
		Question:   "What should I focus on?",
		SpreadType: "3-card",
		Legend:     "Past:\n  [ XVI ] - The Tower (Major Arcana)",
	}
	built := p.Build()

	assert.True(t, strings.HasPrefix(built, "# Role: Oracle"))
	assert.Contains(t, built, "## Invocation\nBy first light I ask.")
	assert.Contains(t, built, "## Question\nWhat should I focus on?")
	assert.Contains(t, built, "## Spread Type\n3-card")
	assert.Contains(t, built, "[ XVI ] - The Tower")
	assert.Contains(t, built, "## Directions")
}

func TestPromptDefaultInvocation(t *testing.T) {
	built := Prompt{Question: "q", SpreadType: "single"}.Build()
	assert.Contains(t, built, "Hermes-Thoth")
	assert.Contains(t, built, "Prometheus")
}

func TestNewRequiresCredentials(t *testing.T) {
	cfg := config.Default()
	cfg.GoogleAIAPIKey = ""
	cfg.OpenRouterAPIKey = ""

	_, err := New(cfg, "gemini", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_AI_API_KEY")

	_, err = New(cfg, "openrouter", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
}

func TestNewUnsupportedProvider(t *testing.T) {
	_, err := New(config.Default(), "crystal-ball", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crystal-ball")
}

func TestNewProviderDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.GoogleAIAPIKey = "test-key"

	o, err := New(cfg, "gemini", "")
	require.NoError(t, err)
	assert.Equal(t, "gemini", o.Provider)
	assert.Equal(t, defaultGeminiModel, o.defaultModel)
	assert.Equal(t, cloudTimeout, o.timeout)

	o, err = New(cfg, "ollama", "llama3")
	require.NoError(t, err)
	assert.Equal(t, "llama3", o.defaultModel)
	assert.Equal(t, localTimeout, o.timeout)
}

func TestNewUsesConfigProvider(t *testing.T) {
	cfg := config.Default()
	cfg.Provider = "ollama"

	o, err := New(cfg, "", "")
	require.NoError(t, err)
	assert.Equal(t, "ollama", o.Provider)
	assert.Equal(t, defaultOllamaModel, o.defaultModel)
}

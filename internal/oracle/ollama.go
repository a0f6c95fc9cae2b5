package oracle

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// Ollama talks to a local Ollama server.
type Ollama struct {
	client *api.Client
}

// NewOllama builds a client for the given host, e.g.
// "http://localhost:11434".
func NewOllama(host string) (*Ollama, error) {
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %v", host, err)
	}
	return &Ollama{client: api.NewClient(base, http.DefaultClient)}, nil
}

// Generate implements Client.
func (o *Ollama) Generate(ctx context.Context, prompt, model string) (string, error) {
	stream := false
	var b strings.Builder
	err := o.client.Generate(ctx, &api.GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: &stream,
	}, func(resp api.GenerateResponse) error {
		b.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("ollama returned an empty response")
	}
	return text, nil
}

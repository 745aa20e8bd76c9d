package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/healthfactguardian/verifier-node/internal/config"
	client "github.com/healthfactguardian/verifier-node/pkg/http"
)

type ollamaBackend struct {
	client  *client.Client
	baseURL string
	model   string
}

func newOllama(cfg config.Analyzer, httpClient *client.Client) *ollamaBackend {
	return &ollamaBackend{
		client:  httpClient,
		baseURL: strings.TrimSuffix(cfg.OllamaURL, "/"),
		model:   cfg.Model,
	}
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
	Format string `json:"format"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (b *ollamaBackend) complete(ctx context.Context, system, prompt string) (string, error) {
	req, err := json.Marshal(ollamaRequest{
		Model:  b.model,
		Prompt: prompt,
		System: system,
		Stream: false,
		Format: "json",
	})
	if err != nil {
		return "", err
	}

	body, err := b.client.Post(ctx, b.baseURL+"/api/generate", req)
	if err != nil {
		return "", fmt.Errorf("calling ollama: %w", err)
	}

	var resp ollamaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("parsing ollama response: %w", err)
	}
	return resp.Response, nil
}

package analyzer

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/healthfactguardian/verifier-node/internal/config"
)

const (
	openAITemperature = 0.3
	openAIMaxTokens   = 500
)

type openAIBackend struct {
	client *openai.Client
	model  string
}

func newOpenAI(cfg config.Analyzer) *openAIBackend {
	b := &openAIBackend{model: cfg.Model}
	if b.model == "" {
		b.model = openai.GPT3Dot5Turbo
	}
	if cfg.APIKey != "" {
		b.client = openai.NewClient(cfg.APIKey)
	}
	return b
}

func (b *openAIBackend) complete(ctx context.Context, system, prompt string) (string, error) {
	if b.client == nil {
		return "", errors.New("openai api key not configured")
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: openAITemperature,
		MaxTokens:   openAIMaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("calling openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}

package llmservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"resume-rag/internal/config"
)

// Generator produces raw model text for a message sequence. The batch
// runner and the interactive pipeline both depend on this rather than a
// concrete client so tests can stub generation.
type Generator interface {
	Generate(ctx context.Context, messages []llms.MessageContent, maxTokens int) (string, error)
}

var _ Generator = (*Client)(nil)

// Client calls an OpenAI-compatible chat completion endpoint.
type Client struct {
	cfg *config.LLMConfig
	llm *openai.LLM
}

func NewClient(cfg *config.LLMConfig) (*Client, error) {
	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(cfg.Key, "Bearer ")),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation LLM: %w", err)
	}
	return &Client{cfg: cfg, llm: llm}, nil
}

// Generate blocks until the model responds or the call fails; no extra
// timeout is layered on top of the transport's.
func (c *Client) Generate(ctx context.Context, messages []llms.MessageContent, maxTokens int) (string, error) {
	resp, err := c.llm.GenerateContent(ctx, messages,
		llms.WithMaxTokens(maxTokens),
		llms.WithTemperature(c.cfg.Temperature),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("generation returned no choices")
	}
	return resp.Choices[0].Content, nil
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/util"
)

const mistralBaseURL = "https://api.mistral.ai/v1/"

// MistralProvider talks to Mistral's OpenAI-compatible chat endpoint
type MistralProvider struct {
	client openai.Client
	config Config
}

// NewMistralProvider creates a new Mistral provider
func NewMistralProvider(config Config) (*MistralProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: Mistral API key is required (set MISTRAL_API_KEY)", model.ErrConfiguration)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = mistralBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := openai.NewClient(
		option.WithAPIKey(config.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
		option.WithHTTPClient(util.NewHTTPClient(0, util.ProxyConfig{
			HTTPProxy:  config.HTTPProxy,
			HTTPSProxy: config.HTTPSProxy,
			NoProxy:    config.NoProxy,
		})),
	)

	return &MistralProvider{client: client, config: config}, nil
}

// Name returns the provider name
func (p *MistralProvider) Name() string {
	return "mistral"
}

// Model returns the model used for the given tier
func (p *MistralProvider) Model(tier Tier) string {
	return p.config.ModelFor(tier)
}

// Complete sends the prompt pair through the chat completions endpoint
func (p *MistralProvider) Complete(ctx context.Context, system, user string, tier Tier) (string, error) {
	ctx, cancel := withCallTimeout(ctx, p.config.Timeout)
	defer cancel()

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.Model(tier)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		MaxTokens:   openai.Int(int64(p.config.maxTokens())),
		Temperature: openai.Float(p.config.Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", statusError("mistral", apiErr.StatusCode, apiErr.Message)
		}
		return "", wrapCallError("mistral", ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("mistral: %w", ErrEmptyResponse)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("mistral: %w", ErrEmptyResponse)
	}
	return text, nil
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/verdict/internal/model"
	"github.com/ppiankov/verdict/internal/util"
	"google.golang.org/genai"
)

// GeminiProvider implements the Provider interface for Google Gemini models
type GeminiProvider struct {
	client *genai.Client
	config Config
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, config Config) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: Gemini API key is required (set GEMINI_API_KEY)", model.ErrConfiguration)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: util.NewHTTPClient(0, util.ProxyConfig{
			HTTPProxy:  config.HTTPProxy,
			HTTPSProxy: config.HTTPSProxy,
			NoProxy:    config.NoProxy,
		}),
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiProvider{client: client, config: config}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Model returns the model used for the given tier
func (p *GeminiProvider) Model(tier Tier) string {
	return p.config.ModelFor(tier)
}

// Complete sends the prompt pair through GenerateContent
func (p *GeminiProvider) Complete(ctx context.Context, system, user string, tier Tier) (string, error) {
	ctx, cancel := withCallTimeout(ctx, p.config.Timeout)
	defer cancel()

	resp, err := p.client.Models.GenerateContent(ctx, p.Model(tier), genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(float32(p.config.Temperature)),
		MaxOutputTokens:   int32(p.config.maxTokens()),
	})
	if err != nil {
		return "", classifyGeminiError(ctx, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}
	return text, nil
}

func classifyGeminiError(ctx context.Context, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return statusError("gemini", apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return statusError("gemini", apiErrPtr.Code, apiErrPtr.Message)
	}
	return wrapCallError("gemini", ctx, err)
}

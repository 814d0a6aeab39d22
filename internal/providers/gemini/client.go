package gemini

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/houndmaster/houndmaster/internal/adapter"
	"github.com/houndmaster/houndmaster/internal/config"
	"github.com/houndmaster/houndmaster/internal/ratelimit"
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

// Client defines the interface for the text-generation model to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/gemini_client.go -package=mocks -mock_names=Client=MockGeminiClient
type Client interface {
	// GenerateText sends a prompt to the model and returns the generated text
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiClient implements the client against the Gemini generateContent REST API
type GeminiClient struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.Limiter
	cfg        config.GeminiConfig
	json       adapter.JSON
}

// NewClient creates a new text-generation client
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.Limiter, cfg config.GeminiConfig, json adapter.JSON) Client {
	return &GeminiClient{
		httpClient: httpClient,
		limiter:    limiter,
		cfg:        cfg,
		json:       json,
	}
}

// GenerateText sends a prompt to the model and returns the generated text
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	requestURL := fmt.Sprintf("%s/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)

	reqBody, err := c.json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	headers := map[string]string{
		"x-goog-api-key": c.cfg.APIKey,
	}

	respBody, err := ratelimit.Schedule(ctx, c.limiter, config.ProviderGemini, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.Post(ctx, requestURL, "application/json", headers, bytes.NewReader(reqBody))
	})
	if err != nil {
		return "", fmt.Errorf("failed to call generation API: %w", err)
	}

	var resp generateResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal generation response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generation response contains no candidates")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	return sb.String(), nil
}

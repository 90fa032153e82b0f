// Package gemini wraps the Gemini API for post copy and illustration
// generation.
package gemini

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/postpilot/postpilot/internal/config"
)

// Generator produces post text and illustrations through the Gemini API.
type Generator struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// NewGenerator creates a Generator from configuration.
func NewGenerator(ctx context.Context, cfg *config.Config) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		HTTPClient: &http.Client{Timeout: cfg.UpstreamTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Generator{
		client:     client,
		textModel:  cfg.GeminiTextModel,
		imageModel: cfg.GeminiImageModel,
	}, nil
}

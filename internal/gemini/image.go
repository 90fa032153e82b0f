package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	// ErrTextInsteadOfImage means the model answered with prose rather than
	// image data. Distinguished from ErrNoImageData so a caller can retry
	// with a reworded prompt.
	ErrTextInsteadOfImage = errors.New("model returned text instead of an image")

	// ErrNoImageData means the response carried neither image nor text parts.
	ErrNoImageData = errors.New("model response contained no image data")
)

// GenerateImage asks the image model for an illustration of the topic and
// returns it as a base64 data URI.
func (g *Generator) GenerateImage(ctx context.Context, topic string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	res, err := g.client.Models.GenerateContent(ctx, g.imageModel, genai.Text(buildImagePrompt(topic)), cfg)
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}

	return extractImageDataURI(res)
}

func buildImagePrompt(topic string) string {
	return fmt.Sprintf("Create a clean, professional illustration suitable for a LinkedIn post about %q. "+
		"Modern flat style, muted colors, no text or watermarks in the image.", topic)
}

// extractImageDataURI scans the first candidate's parts for inline binary
// data and returns it as a data URI. A text-only response yields
// ErrTextInsteadOfImage; an empty one yields ErrNoImageData.
func extractImageDataURI(res *genai.GenerateContentResponse) (string, error) {
	sawText := false

	if res != nil && len(res.Candidates) > 0 && res.Candidates[0].Content != nil {
		for _, part := range res.Candidates[0].Content.Parts {
			if part == nil {
				continue
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
			}
			if part.Text != "" {
				sawText = true
			}
		}
	}

	if sawText {
		return "", ErrTextInsteadOfImage
	}
	return "", ErrNoImageData
}

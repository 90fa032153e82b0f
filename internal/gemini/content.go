package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// NoContentFallback is returned when the model response carries no text.
const NoContentFallback = "No content generated."

// GenerationRequest carries the free-form fields interpolated into the prompt.
// The fields are treated as opaque text; the downstream consumer is a
// best-effort language model, so no escaping is performed.
type GenerationRequest struct {
	Topic    string
	Tone     string
	Audience string
	History  string
}

// GenerateContent builds a single instruction prompt from the request and
// returns the model's text, or NoContentFallback when the response shape is
// unexpected.
func (g *Generator) GenerateContent(ctx context.Context, req GenerationRequest) (string, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.textModel, genai.Text(buildContentPrompt(req)), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return extractText(res), nil
}

func buildContentPrompt(req GenerationRequest) string {
	return fmt.Sprintf(`Write a LinkedIn post about "%s".
Tone: %s.
Target audience: %s.
Previously posted content, for context (do not repeat it): %s.
Return only the post text, with no preamble and at most three short paragraphs.`,
		req.Topic, req.Tone, req.Audience, req.History)
}

// extractText returns the first candidate's first text part.
func extractText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 {
		return NoContentFallback
	}
	cand := res.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return NoContentFallback
	}
	if text := cand.Content.Parts[0].Text; text != "" {
		return text
	}
	return NoContentFallback
}

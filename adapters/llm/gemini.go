// Package llm adapts Google's Gemini API as the upstream timeline source:
// one prompt in, a structured slide timeline out. Narration and timing fields
// are filled downstream.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/nayottama/wicara/domain/entities"
	"github.com/nayottama/wicara/domain/repositories"
)

const timelinePrompt = `You write slide timelines for short narrated educational videos.
Produce a JSON object {"slides": [...]} of 5 to 9 slides about the topic below.
Each slide has a "kind" field, one of: intro, text, bullets, diagram, image,
quiz-dual, kidsContent, outro. Use the fields title, subtitle, body, bullets,
nodeLabels, caption, imageQuery, question, options, correctIndex, story as
appropriate for the kind. Start with an intro and end with an outro, and
include exactly one quiz-dual slide with 3 or 4 options.

Topic: %s`

// GeminiGenerator implements the timeline source using Gemini.
type GeminiGenerator struct {
	client *genai.Client
	logger *zap.Logger
	model  string
}

var _ repositories.TimelineGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a generator. GEMINI_API_KEY is required;
// GEMINI_MODEL overrides the default model.
func NewGeminiGenerator(logger *zap.Logger) (*GeminiGenerator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		logger: logger,
		model:  model,
	}, nil
}

// GenerateTimeline asks Gemini for a slide timeline for the prompt.
func (g *GeminiGenerator) GenerateTimeline(ctx context.Context, prompt string) (*entities.Timeline, error) {
	g.logger.Info("Generating timeline", zap.String("model", g.model))

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(fmt.Sprintf(timelinePrompt, prompt)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		})
	if err != nil {
		return nil, fmt.Errorf("failed to generate timeline: %w", err)
	}

	raw := resp.Text()
	var payload struct {
		Slides []*entities.Slide `json:"slides"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse timeline JSON: %w", err)
	}
	if len(payload.Slides) == 0 {
		return nil, fmt.Errorf("generator returned no slides")
	}

	g.logger.Info("Timeline generated", zap.Int("slides", len(payload.Slides)))
	return entities.NewTimeline(prompt, payload.Slides), nil
}

package entity

import (
	"context"
	"fmt"

	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const annotatePrompt = `Identify named entities in the following sentence describing a shared expense.

Sentence: %q

Respond with a JSON array only, no prose. Each element must have:
  "label": one of "PERSON", "MONEY", "DATE"
  "text": the exact substring of the sentence, character for character

List entities in the order they appear in the sentence. If there are none, respond with [].`

// GeminiSource annotates text using the Google Gemini API. The client and
// model are constructed once at startup and shared read-only across requests.
type GeminiSource struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    logging.Logger
}

// NewGeminiSource creates a GeminiSource with the given API key and model name.
func NewGeminiSource(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiSource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSource{
		client: client,
		model:  client.GenerativeModel(modelName),
		log:    logger,
	}, nil
}

// Close releases the underlying API client.
func (s *GeminiSource) Close() error {
	return s.client.Close()
}

// Annotate asks the model for labeled spans and reconciles them against the
// input text to recover character offsets.
func (s *GeminiSource) Annotate(ctx context.Context, text string) ([]models.TextSpan, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(annotatePrompt, text)))
	if err != nil {
		return nil, &AnnotateError{Provider: "gemini", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &AnnotateError{Provider: "gemini", Err: fmt.Errorf("empty model response")}
	}

	raw := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	labeled, err := parseSpanJSON(raw)
	if err != nil {
		return nil, &AnnotateError{Provider: "gemini", Err: err}
	}

	spans := alignSpans(text, labeled)
	s.log.WithField("spans", len(spans)).Debug("Annotated text with Gemini")
	return spans, nil
}

package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/expense-parse/internal/models"
)

// labeledSpan is the wire shape the model is asked to produce.
type labeledSpan struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// parseSpanJSON extracts the JSON array from a model response, tolerating
// markdown code fences and stray prose around the payload.
func parseSpanJSON(raw string) ([]labeledSpan, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSpace(raw)

	startIdx := strings.Index(raw, "[")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON array found in response")
	}
	endIdx := strings.LastIndex(raw, "]")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON array in response")
	}
	raw = raw[startIdx : endIdx+1]

	var spans []labeledSpan
	if err := json.Unmarshal([]byte(raw), &spans); err != nil {
		return nil, fmt.Errorf("unmarshaling spans: %w", err)
	}
	return spans, nil
}

// alignSpans reconciles model-reported span texts against the original input,
// recovering byte offsets with a left-to-right cursor so repeated mentions map
// to successive occurrences. Spans whose text does not occur in the input are
// dropped; unknown labels become OTHER.
func alignSpans(text string, labeled []labeledSpan) []models.TextSpan {
	spans := make([]models.TextSpan, 0, len(labeled))
	cursor := 0
	for _, ls := range labeled {
		if ls.Text == "" {
			continue
		}
		idx := strings.Index(text[cursor:], ls.Text)
		if idx >= 0 {
			idx += cursor
		} else {
			// Model listed spans out of order; fall back to a full scan.
			idx = strings.Index(text, ls.Text)
		}
		if idx < 0 {
			continue
		}
		spans = append(spans, models.TextSpan{
			Label:     models.ParseEntityKind(ls.Label),
			Text:      ls.Text,
			StartChar: idx,
			EndChar:   idx + len(ls.Text),
		})
		if end := idx + len(ls.Text); end > cursor {
			cursor = end
		}
	}
	sortSpans(spans)
	return spans
}

// sortSpans orders spans by start offset, preserving relative order of equal
// starts. Input sizes are tiny, insertion sort keeps it allocation-free.
func sortSpans(spans []models.TextSpan) {
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].StartChar < spans[j-1].StartChar; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
}

package extractor_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"fjacquet/expense-parse/internal/models"

	"github.com/stretchr/testify/require"
)

// spanDef describes an entity occurrence for test fixtures.
type spanDef struct {
	label models.EntityKind
	text  string
}

// spansFor builds ordered TextSpans by locating each definition in the text
// left to right, so offsets stay consistent with the input string.
func spansFor(t *testing.T, text string, defs ...spanDef) []models.TextSpan {
	t.Helper()
	spans := make([]models.TextSpan, 0, len(defs))
	cursor := 0
	for _, d := range defs {
		idx := strings.Index(text[cursor:], d.text)
		require.GreaterOrEqual(t, idx, 0, "span %q not found in %q", d.text, text)
		idx += cursor
		spans = append(spans, models.TextSpan{
			Label:     d.label,
			Text:      d.text,
			StartChar: idx,
			EndChar:   idx + len(d.text),
		})
		cursor = idx + len(d.text)
	}
	return spans
}

// stubSource returns canned spans and counts invocations.
type stubSource struct {
	spans []models.TextSpan
	err   error
	calls int
}

func (s *stubSource) Annotate(_ context.Context, _ string) ([]models.TextSpan, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.spans, nil
}

// stubNormalizer resolves every phrase to a fixed date and counts calls.
type stubNormalizer struct {
	date  time.Time
	ok    bool
	calls int
}

func (n *stubNormalizer) Normalize(_ string) (time.Time, bool) {
	n.calls++
	return n.date, n.ok
}

package entity

import (
	"context"
	"testing"

	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPatternSource(t *testing.T) *PatternSource {
	t.Helper()
	source, err := NewPatternSource("", logging.NewLogrusAdapter("error", "text"))
	require.NoError(t, err)
	return source
}

func TestPatternSourceAnnotate(t *testing.T) {
	source := newTestPatternSource(t)
	text := "Alice paid $450 for dinner with Bob and Carol yesterday"

	spans, err := source.Annotate(context.Background(), text)
	require.NoError(t, err)

	var got []string
	for _, s := range spans {
		got = append(got, string(s.Label)+":"+s.Text)
	}
	assert.Equal(t, []string{
		"PERSON:Alice",
		"MONEY:$450",
		"PERSON:Bob",
		"PERSON:Carol",
		"DATE:yesterday",
	}, got)
}

func TestPatternSourceSpanOffsetsAreConsistent(t *testing.T) {
	source := newTestPatternSource(t)
	text := "Bob paid 20 dollars for taxi with Alice Smith on Friday"

	spans, err := source.Annotate(context.Background(), text)
	require.NoError(t, err)
	require.NotEmpty(t, spans)

	for _, s := range spans {
		assert.Less(t, s.StartChar, s.EndChar)
		assert.Equal(t, s.Text, text[s.StartChar:s.EndChar])
	}
}

func TestPatternSourceMergesAdjacentNameTokens(t *testing.T) {
	source := newTestPatternSource(t)

	spans, err := source.Annotate(context.Background(), "Alice Smith paid 20 dollars")
	require.NoError(t, err)

	var persons []string
	for _, s := range spans {
		if s.Label == models.EntityPerson {
			persons = append(persons, s.Text)
		}
	}
	assert.Equal(t, []string{"Alice Smith"}, persons)
}

func TestPatternSourceFiltersStopwordsAndDates(t *testing.T) {
	source := newTestPatternSource(t)

	spans, err := source.Annotate(context.Background(), "Bob treated us on Friday")
	require.NoError(t, err)

	var persons, dates []string
	for _, s := range spans {
		switch s.Label {
		case models.EntityPerson:
			persons = append(persons, s.Text)
		case models.EntityDate:
			dates = append(dates, s.Text)
		}
	}
	assert.Equal(t, []string{"Bob"}, persons)
	assert.Equal(t, []string{"Friday"}, dates)
}

func TestPatternSourceEmptyText(t *testing.T) {
	source := newTestPatternSource(t)

	spans, err := source.Annotate(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, spans)
}

func TestPatternSourceLexiconStopwords(t *testing.T) {
	lexicon := t.TempDir() + "/lexicon.yaml"
	writeFile(t, lexicon, "stopwords:\n  - Dinner\n")

	source, err := NewPatternSource(lexicon, logging.NewLogrusAdapter("error", "text"))
	require.NoError(t, err)

	spans, err := source.Annotate(context.Background(), "Dinner with Bob")
	require.NoError(t, err)

	var persons []string
	for _, s := range spans {
		if s.Label == models.EntityPerson {
			persons = append(persons, s.Text)
		}
	}
	assert.Equal(t, []string{"Bob"}, persons)
}

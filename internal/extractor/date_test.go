package extractor_test

import (
	"testing"
	"time"

	"fjacquet/expense-parse/internal/extractor"
	"fjacquet/expense-parse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateFromFirstDateEntity(t *testing.T) {
	text := "Alice paid 450 yesterday"
	entities := spansFor(t, text,
		spanDef{models.EntityPerson, "Alice"},
		spanDef{models.EntityDate, "yesterday"},
	)
	normalizer := &stubNormalizer{date: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), ok: true}

	dateISO := extractor.ResolveDate(entities, normalizer)
	require.NotNil(t, dateISO)
	assert.Equal(t, "2024-03-14", *dateISO)
	assert.Equal(t, 1, normalizer.calls)
}

func TestResolveDateNoEntitySkipsNormalizer(t *testing.T) {
	text := "Alice paid 450"
	entities := spansFor(t, text,
		spanDef{models.EntityPerson, "Alice"},
	)
	normalizer := &stubNormalizer{ok: true}

	dateISO := extractor.ResolveDate(entities, normalizer)
	assert.Nil(t, dateISO)
	assert.Zero(t, normalizer.calls)
}

func TestResolveDateNormalizationFailure(t *testing.T) {
	text := "Alice paid 450 someday"
	entities := spansFor(t, text,
		spanDef{models.EntityDate, "someday"},
	)
	normalizer := &stubNormalizer{ok: false}

	dateISO := extractor.ResolveDate(entities, normalizer)
	assert.Nil(t, dateISO)
	assert.Equal(t, 1, normalizer.calls)
}

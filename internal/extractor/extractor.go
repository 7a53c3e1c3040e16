// Package extractor implements the expense extraction pipeline: a layered set
// of heuristics that turns one informal sentence into a structured record of
// amount, payer, participants, description, and date. Each resolver is a pure
// function of the text, the entity spans, and the fields resolved before it;
// a resolver that cannot find its field returns nil or empty rather than
// failing, so the pipeline always produces a complete record shape.
package extractor

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/expense-parse/internal/datenorm"
	"fjacquet/expense-parse/internal/entity"
	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/models"
)

// Extractor orchestrates the resolvers against a shared entity source and
// date normalizer. It holds no per-request state and is safe for concurrent
// use when its collaborators are.
type Extractor struct {
	source entity.Source
	dates  datenorm.Normalizer
	log    logging.Logger
}

// New creates an Extractor.
func New(source entity.Source, dates datenorm.Normalizer, logger logging.Logger) *Extractor {
	return &Extractor{
		source: source,
		dates:  dates,
		log:    logger,
	}
}

// Extract runs the full pipeline on one sentence. Empty or whitespace-only
// input short-circuits to an all-null record without consulting the entity
// source. An entity source failure is the only error path; per-field misses
// are absorbed into null fields.
func (e *Extractor) Extract(ctx context.Context, text string) (models.ExpenseRecord, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.EmptyExpenseRecord(), nil
	}

	entities, err := e.source.Annotate(ctx, text)
	if err != nil {
		return models.ExpenseRecord{}, fmt.Errorf("annotating text: %w", err)
	}

	amount := ResolveAmount(text, entities)
	payer := ResolvePayer(text, entities)
	dateISO := ResolveDate(entities, e.dates)
	participants := ResolveParticipants(text, entities, payer)
	desc := ResolveDescription(text, amount, payer, participants)

	e.log.WithField("entities", len(entities)).Debug("Extraction complete")

	return models.ExpenseRecord{
		Desc:         &desc,
		Amount:       amount,
		Payer:        payer,
		Participants: participants,
		DateISO:      dateISO,
	}, nil
}

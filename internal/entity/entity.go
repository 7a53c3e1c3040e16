// Package entity provides named-entity annotation over raw expense text.
// A Source labels substrings of the input as PERSON, MONEY or DATE mentions;
// the extraction pipeline consumes those spans and tolerates imperfect output.
package entity

import (
	"context"
	"fmt"

	"fjacquet/expense-parse/internal/models"
)

// Source annotates raw text with labeled spans ordered by start offset.
// Implementations must be safe for concurrent use.
type Source interface {
	Annotate(ctx context.Context, text string) ([]models.TextSpan, error)
}

// AnnotateError represents a failure of an entity source. Unlike a missing
// field, which resolvers absorb, an annotation failure is surfaced to the
// caller because the pipeline cannot proceed without spans.
type AnnotateError struct {
	Provider string
	Err      error
}

func (e *AnnotateError) Error() string {
	return fmt.Sprintf("%s entity source failed: %v", e.Provider, e.Err)
}

func (e *AnnotateError) Unwrap() error {
	return e.Err
}

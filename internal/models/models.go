// Package models defines the data types shared across the extraction pipeline.
package models

import "strings"

// EntityKind identifies the kind of a labeled text span. The entity source may
// emit arbitrary labels; everything outside the domain-relevant set maps to
// EntityOther so that resolvers can ignore it explicitly.
type EntityKind string

const (
	// EntityPerson labels a person mention.
	EntityPerson EntityKind = "PERSON"
	// EntityMoney labels a monetary mention.
	EntityMoney EntityKind = "MONEY"
	// EntityDate labels a date mention.
	EntityDate EntityKind = "DATE"
	// EntityOther labels any span the pipeline does not care about.
	EntityOther EntityKind = "OTHER"
)

// ParseEntityKind maps a raw label from an entity source onto the closed
// EntityKind set. Unrecognized labels become EntityOther.
func ParseEntityKind(label string) EntityKind {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "PERSON":
		return EntityPerson
	case "MONEY":
		return EntityMoney
	case "DATE":
		return EntityDate
	default:
		return EntityOther
	}
}

// TextSpan is a labeled substring of the input text with byte offsets.
// Spans are immutable and ordered by StartChar. For a well-formed source,
// Text == input[StartChar:EndChar].
type TextSpan struct {
	Label     EntityKind `json:"label"`
	Text      string     `json:"text"`
	StartChar int        `json:"start_char"`
	EndChar   int        `json:"end_char"`
}

// ExpenseRecord is the structured output of one extraction run.
// All fields except Participants are nullable; Participants is always a
// non-nil slice in first-mention order with no duplicates.
type ExpenseRecord struct {
	Desc         *string  `json:"desc"`
	Amount       *float64 `json:"amount"`
	Payer        *string  `json:"payer"`
	Participants []string `json:"participants"`
	DateISO      *string  `json:"date_iso"`
}

// EmptyExpenseRecord returns the all-null record produced for empty input.
func EmptyExpenseRecord() ExpenseRecord {
	return ExpenseRecord{Participants: []string{}}
}

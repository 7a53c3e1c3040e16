// Package datenorm normalizes textual date phrases into calendar dates.
// It first tries a chain of explicit layouts, then falls back to
// natural-language parsing ("yesterday", "last friday", "jan 5").
package datenorm

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// LayoutISO is the calendar date form used everywhere in the output.
const LayoutISO = "2006-01-02"

// layouts are the explicit formats tried before natural-language parsing.
var layouts = []string{
	LayoutISO,
	"02.01.2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalizer converts a textual date phrase into a calendar date.
// The boolean result is false when the phrase cannot be normalized.
type Normalizer interface {
	Normalize(phrase string) (time.Time, bool)
}

// PhraseNormalizer is the default Normalizer. It is safe for concurrent use.
type PhraseNormalizer struct {
	parser *when.Parser
	now    func() time.Time
}

// New creates a PhraseNormalizer anchored to the wall clock.
func New() *PhraseNormalizer {
	return NewWithClock(time.Now)
}

// NewWithClock creates a PhraseNormalizer with an injected reference clock,
// so relative phrases resolve deterministically in tests.
func NewWithClock(now func() time.Time) *PhraseNormalizer {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &PhraseNormalizer{parser: w, now: now}
}

// Normalize converts a phrase like "yesterday" or "12.03.2024" into a date.
func (n *PhraseNormalizer) Normalize(phrase string) (time.Time, bool) {
	phrase = cleanPhrase(phrase)
	if phrase == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, phrase); err == nil {
			return t, true
		}
	}

	r, err := n.parser.Parse(phrase, n.now())
	if err != nil || r == nil {
		return time.Time{}, false
	}
	return r.Time, true
}

// ToISO formats a date as YYYY-MM-DD.
func ToISO(t time.Time) string {
	return t.Format(LayoutISO)
}

// cleanPhrase trims and collapses whitespace before parsing.
func cleanPhrase(phrase string) string {
	phrase = strings.TrimSpace(phrase)
	return whitespaceRe.ReplaceAllString(phrase, " ")
}

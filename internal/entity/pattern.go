package entity

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/models"

	"gopkg.in/yaml.v3"
)

// Lexicon tunes the pattern source. Stopwords are capitalized tokens that
// must never be treated as person names; they extend the built-in defaults.
type Lexicon struct {
	Stopwords []string `yaml:"stopwords"`
}

var (
	moneyRe = regexp.MustCompile(`(?i)[$€£₹]\s*\d[\d,]*(?:\.\d{1,2})?|\d[\d,]*(?:\.\d{1,2})?\s*(?:dollars?|bucks?|euros?|rupees|usd|eur|chf)\b`)
	dateRe  = regexp.MustCompile(`(?i)\b(?:yesterday|today|tomorrow|tonight|(?:last|next|this)\s+(?:week|month|year|monday|tuesday|wednesday|thursday|friday|saturday|sunday)|(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|(?:january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|oct|nov|dec)\.?\s+\d{1,2}(?:st|nd|rd|th)?|\d{4}-\d{2}-\d{2}|\d{1,2}[./]\d{1,2}[./]\d{2,4})\b`)
	tokenRe = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
)

// defaultStopwords covers sentence-initial verbs, function words, and
// calendar words that the capitalized-token heuristic would otherwise
// misread as person names.
var defaultStopwords = []string{
	"The", "A", "An", "I", "We", "He", "She", "They", "It", "You",
	"Paid", "Spent", "Split", "Owes", "For", "With", "And", "Among",
	"On", "At", "In", "To", "From", "Of", "By",
	"Yesterday", "Today", "Tomorrow", "Tonight", "Last", "Next", "This",
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	"January", "February", "March", "April", "May", "June", "July",
	"August", "September", "October", "November", "December",
}

// PatternSource is an offline entity source built from ordered regex and
// lexicon heuristics. It is deliberately conservative: the resolvers carry
// their own raw-text fallbacks for what it misses.
type PatternSource struct {
	stopwords map[string]bool
	log       logging.Logger
}

// NewPatternSource creates a PatternSource, optionally merging stopwords from
// a YAML lexicon file. A missing file is not an error; defaults are used.
func NewPatternSource(lexiconFile string, logger logging.Logger) (*PatternSource, error) {
	stopwords := make(map[string]bool, len(defaultStopwords))
	for _, w := range defaultStopwords {
		stopwords[strings.ToLower(w)] = true
	}

	if lexiconFile != "" {
		data, err := os.ReadFile(lexiconFile)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Warn("Lexicon file not found, using default stopwords",
					logging.Field{Key: "file", Value: lexiconFile})
			} else {
				return nil, fmt.Errorf("error reading lexicon file: %w", err)
			}
		} else {
			var lexicon Lexicon
			if err := yaml.Unmarshal(data, &lexicon); err != nil {
				return nil, fmt.Errorf("error parsing lexicon file: %w", err)
			}
			for _, w := range lexicon.Stopwords {
				stopwords[strings.ToLower(strings.TrimSpace(w))] = true
			}
		}
	}

	return &PatternSource{stopwords: stopwords, log: logger}, nil
}

// Annotate labels money mentions, date mentions, and capitalized tokens that
// survive the stopword filter as person mentions. It never fails.
func (s *PatternSource) Annotate(_ context.Context, text string) ([]models.TextSpan, error) {
	var spans []models.TextSpan
	var covered [][2]int

	for _, m := range moneyRe.FindAllStringIndex(text, -1) {
		spans = append(spans, span(models.EntityMoney, text, m[0], m[1]))
		covered = append(covered, [2]int{m[0], m[1]})
	}

	for _, m := range dateRe.FindAllStringIndex(text, -1) {
		if overlaps(covered, m[0], m[1]) {
			continue
		}
		spans = append(spans, span(models.EntityDate, text, m[0], m[1]))
		covered = append(covered, [2]int{m[0], m[1]})
	}

	spans = append(spans, s.personSpans(text, covered)...)
	sortSpans(spans)

	s.log.WithField("spans", len(spans)).Debug("Annotated text with pattern source")
	return spans, nil
}

// personSpans finds capitalized tokens outside covered ranges and outside the
// stopword set, merging adjacent tokens ("Alice Smith") into one span.
func (s *PatternSource) personSpans(text string, covered [][2]int) []models.TextSpan {
	var out []models.TextSpan
	for _, m := range tokenRe.FindAllStringIndex(text, -1) {
		if overlaps(covered, m[0], m[1]) {
			continue
		}
		token := text[m[0]:m[1]]
		if s.stopwords[strings.ToLower(token)] {
			continue
		}

		// Extend the previous span when the tokens form one name.
		if n := len(out); n > 0 && out[n-1].EndChar+1 == m[0] && text[out[n-1].EndChar] == ' ' {
			out[n-1].EndChar = m[1]
			out[n-1].Text = text[out[n-1].StartChar:m[1]]
			continue
		}
		out = append(out, span(models.EntityPerson, text, m[0], m[1]))
	}
	return out
}

func span(label models.EntityKind, text string, start, end int) models.TextSpan {
	return models.TextSpan{Label: label, Text: text[start:end], StartChar: start, EndChar: end}
}

func overlaps(ranges [][2]int, start, end int) bool {
	for _, r := range ranges {
		if start < r[1] && end > r[0] {
			return true
		}
	}
	return false
}

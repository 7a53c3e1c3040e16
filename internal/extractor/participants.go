package extractor

import (
	"regexp"
	"strings"

	"fjacquet/expense-parse/internal/models"
)

// groupingKeywords are tried in this fixed priority order, not in text
// position order. Only the first occurrence of the chosen keyword is used.
var groupingKeywords = []string{" for ", " with ", " among "}

// nameSplitRe splits a keyword tail into candidate name fragments.
var nameSplitRe = regexp.MustCompile(`,| and `)

// ResolveParticipants extracts the people the expense is shared with,
// excluding the payer. Names found after a grouping keyword take precedence;
// otherwise every non-payer person mention is returned. The result preserves
// first-mention order and contains no duplicates.
//
// Keyword-tail matches are deliberately not re-checked against the payer:
// common phrasing keeps the payer out of the tail naturally, and a sentence
// mentioning the payer twice is rare enough to leave as-is.
func ResolveParticipants(text string, entities []models.TextSpan, payer *string) []string {
	persons := personSpans(entities)

	if matched := participantsFromKeywordTail(text, persons); matched != nil {
		return matched
	}

	others := make([]string, 0, len(persons))
	for _, p := range persons {
		if payer != nil && p.Text == *payer {
			continue
		}
		others = append(others, p.Text)
	}
	return dedupe(others)
}

// participantsFromKeywordTail takes the substring after the first occurrence
// of the highest-priority grouping keyword present, splits it on commas and
// " and ", and collects person mentions contained in the fragments. When the
// chosen keyword's tail names nobody, the next keyword in priority order is
// tried. Returns nil when no tail yields a match.
func participantsFromKeywordTail(text string, persons []models.TextSpan) []string {
	lower := strings.ToLower(text)
	for _, kw := range groupingKeywords {
		idx := strings.Index(lower, kw)
		if idx == -1 {
			continue
		}

		tail := text[idx+len(kw):]
		var candidates []string
		for _, fragment := range nameSplitRe.Split(tail, -1) {
			fragment = strings.TrimSpace(fragment)
			for _, p := range persons {
				if strings.Contains(fragment, p.Text) {
					candidates = append(candidates, p.Text)
				}
			}
		}
		if len(candidates) > 0 {
			return dedupe(candidates)
		}
	}
	return nil
}

// dedupe removes duplicates preserving first-seen order. Always returns a
// non-nil slice.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// maxDescriptionLen caps the description in every resolver path.
	maxDescriptionLen = 120
	// defaultDescription is returned when nothing usable remains.
	defaultDescription = "Expense"
)

var (
	afterForRe    = regexp.MustCompile(`(?i)\bfor\b(.+)`)
	paidToForRe   = regexp.MustCompile(`(?i)\bpaid\b(.*?)\bfor\b`)
	whitespaceSeq = regexp.MustCompile(`\s+`)
)

// ResolveDescription extracts a free-text label for the expense. Three rules
// apply in priority order: everything after the first "for", then the text
// between "paid" and "for", then the residue left after removing the already
// resolved names and amount. The first rule wins even when a later rule would
// produce a better label; that trade-off keeps the heuristic predictable.
// Never returns an empty default: the residue rule falls back to "Expense".
func ResolveDescription(text string, amount *float64, payer *string, participants []string) string {
	if desc, ok := descriptionAfterFor(text); ok {
		return desc
	}
	if desc, ok := descriptionBetweenPaidAndFor(text); ok {
		return desc
	}
	return descriptionFromResidue(text, amount, payer, participants)
}

// descriptionAfterFor takes everything after the first word-boundary "for".
// A matched but empty-after-trimming result is still returned as-is.
func descriptionAfterFor(text string) (string, bool) {
	m := afterForRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	desc := strings.Trim(strings.TrimSpace(m[1]), ".")
	return truncate(desc, maxDescriptionLen), true
}

// descriptionBetweenPaidAndFor takes the non-greedy text between "paid" and
// "for", succeeding only when something remains after trimming.
func descriptionBetweenPaidAndFor(text string) (string, bool) {
	m := paidToForRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	desc := strings.Trim(m[1], " .,-:")
	if desc == "" {
		return "", false
	}
	return truncate(desc, maxDescriptionLen), true
}

// descriptionFromResidue removes the payer, the participants, and the literal
// decimal rendering of the amount from the text, collapses whitespace, trims
// punctuation, and keeps the part before the first comma.
func descriptionFromResidue(text string, amount *float64, payer *string, participants []string) string {
	residue := text
	if payer != nil {
		residue = strings.Replace(residue, *payer, "", 1)
	}
	for _, p := range participants {
		residue = strings.Replace(residue, p, "", 1)
	}
	if amount != nil {
		rendered := strconv.FormatFloat(*amount, 'f', -1, 64)
		residue = strings.Replace(residue, rendered, "", 1)
	}

	residue = whitespaceSeq.ReplaceAllString(residue, " ")
	residue = strings.Trim(residue, " .,-:")
	if residue == "" {
		return defaultDescription
	}
	if i := strings.Index(residue, ","); i >= 0 {
		residue = residue[:i]
	}
	return truncate(residue, maxDescriptionLen)
}

// truncate limits a string to n characters, counting runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

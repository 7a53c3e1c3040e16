package extractor

import (
	"regexp"
	"strings"

	"fjacquet/expense-parse/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// numberRunRe matches an unsigned decimal with up to two fraction digits.
	numberRunRe = regexp.MustCompile(`\d+(?:\.\d{1,2})?`)
	// amountFallbackRe scans raw text for a number optionally preceded by a
	// currency glyph.
	amountFallbackRe = regexp.MustCompile(`(?:[$€£₹]\s*)?(\d+(?:\.\d{1,2})?)`)
)

// ResolveAmount extracts a single monetary value from the text. The first
// MONEY entity wins; when it is absent or unparseable the raw text is scanned
// for the first decimal-looking run. Parse failures are swallowed, never
// propagated.
//
// Known limitation: the raw-text fallback does not exclude digits belonging
// to dates or phone-like numbers.
func ResolveAmount(text string, entities []models.TextSpan) *float64 {
	if v := amountFromMoneyEntity(entities); v != nil {
		return v
	}
	return amountFromText(text)
}

// amountFromMoneyEntity parses the first MONEY entity. Only the first such
// entity is consulted; if it does not yield a number the caller falls back to
// the raw-text scan rather than trying later MONEY entities.
func amountFromMoneyEntity(entities []models.TextSpan) *float64 {
	for _, ent := range entities {
		if ent.Label != models.EntityMoney {
			continue
		}
		cleaned := strings.ReplaceAll(ent.Text, ",", "")
		run := numberRunRe.FindString(cleaned)
		if run == "" {
			return nil
		}
		if v, ok := parseDecimal(run); ok {
			return &v
		}
		return nil
	}
	return nil
}

// amountFromText returns the first decimal-looking run in the raw text.
func amountFromText(text string) *float64 {
	m := amountFallbackRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	if v, ok := parseDecimal(m[1]); ok {
		return &v
	}
	return nil
}

func parseDecimal(s string) (float64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return d.InexactFloat64(), true
}

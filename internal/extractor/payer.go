package extractor

import (
	"strings"

	"fjacquet/expense-parse/internal/models"
)

// payerCue is the verb signaling who paid in casual expense phrasing.
const payerCue = "paid"

// ResolvePayer identifies the single person who paid. The subject of "paid"
// is the most reliable signal: the nearest person mention preceding the cue
// wins. Without the cue, the first-mentioned person is the best default.
func ResolvePayer(text string, entities []models.TextSpan) *string {
	persons := personSpans(entities)
	if len(persons) == 0 {
		return nil
	}

	if name := payerBeforeCue(text, persons); name != nil {
		return name
	}

	first := persons[0].Text
	return &first
}

// payerBeforeCue returns the last person mention whose span ends at or before
// the first case-insensitive occurrence of the payer cue.
func payerBeforeCue(text string, persons []models.TextSpan) *string {
	cue := strings.Index(strings.ToLower(text), payerCue)
	if cue == -1 {
		return nil
	}

	var best *string
	for _, p := range persons {
		if p.EndChar <= cue {
			name := p.Text
			best = &name
		}
	}
	return best
}

// personSpans filters PERSON entities, preserving left-to-right order.
func personSpans(entities []models.TextSpan) []models.TextSpan {
	var persons []models.TextSpan
	for _, ent := range entities {
		if ent.Label == models.EntityPerson {
			persons = append(persons, ent)
		}
	}
	return persons
}

package extractor

import (
	"fjacquet/expense-parse/internal/datenorm"
	"fjacquet/expense-parse/internal/models"
)

// ResolveDate extracts a calendar date in YYYY-MM-DD form from the first DATE
// entity, delegating phrase normalization to the given normalizer. Without a
// DATE entity the normalizer is not called at all.
func ResolveDate(entities []models.TextSpan, normalizer datenorm.Normalizer) *string {
	for _, ent := range entities {
		if ent.Label != models.EntityDate {
			continue
		}
		if t, ok := normalizer.Normalize(ent.Text); ok {
			iso := datenorm.ToISO(t)
			return &iso
		}
		return nil
	}
	return nil
}

package content

import (
	"fmt"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// Verify checks the static tables for completeness so gaps surface at
// process start instead of as runtime lookup misses: the persona table
// must be a bijection over the 10 unordered category pairs, every
// (persona, variant) pair needs a strengths row, every category needs
// at least two scenarios and exactly one reframing strategy.
func Verify() error {
	if len(personaByPair) != 10 {
		return fmt.Errorf("persona table has %d pairs, want 10", len(personaByPair))
	}
	seen := make(map[model.PersonaType]string, 10)
	for i, a := range model.Categories {
		for _, b := range model.Categories[i+1:] {
			key := PairKey(a, b)
			p, ok := personaByPair[key]
			if !ok {
				return fmt.Errorf("persona table missing pair %s", key)
			}
			if prev, dup := seen[p.Type]; dup {
				return fmt.Errorf("persona %s mapped by both %s and %s", p.Type, prev, key)
			}
			seen[p.Type] = key
			if len(p.Strengths) == 0 || len(p.ShadowSides) == 0 || len(p.BrandingKeywords) == 0 {
				return fmt.Errorf("persona %s has empty attribute lists", p.Type)
			}
			for _, v := range []model.TemplateVariant{model.VariantBalanced, model.VariantSpiked, model.VariantMixed} {
				pts, ok := strengthsTemplates[strengthsKey{p.Type, v}]
				if !ok {
					return fmt.Errorf("strengths table missing (%s, %s)", p.Type, v)
				}
				for _, pt := range pts {
					if pt == "" {
						return fmt.Errorf("strengths table has empty point for (%s, %s)", p.Type, v)
					}
				}
			}
		}
	}

	counts := make(map[model.Category]int, 5)
	for _, sc := range scenarioPool {
		if sc.Title == "" || sc.Description == "" {
			return fmt.Errorf("scenario %q incomplete", sc.Title)
		}
		for _, c := range sc.RelatedCategories {
			if !c.Valid() {
				return fmt.Errorf("scenario %q references unknown category %q", sc.Title, c)
			}
			counts[c]++
		}
	}
	for _, c := range model.Categories {
		if counts[c] < 2 {
			return fmt.Errorf("category %s appears in %d scenarios, want >= 2", c, counts[c])
		}
		if _, ok := reframingByCategory[c]; !ok {
			return fmt.Errorf("reframing table missing category %s", c)
		}
	}
	if len(reframingByCategory) != len(model.Categories) {
		return fmt.Errorf("reframing table has %d entries, want %d", len(reframingByCategory), len(model.Categories))
	}
	return nil
}

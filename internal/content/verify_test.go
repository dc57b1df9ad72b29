package content

import (
	"testing"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

func TestVerify(t *testing.T) {
	if err := Verify(); err != nil {
		t.Fatalf("static content tables failed verification: %v", err)
	}
}

func TestPairKeyIsOrderInsensitive(t *testing.T) {
	for i, a := range model.Categories {
		for _, b := range model.Categories[i+1:] {
			if PairKey(a, b) != PairKey(b, a) {
				t.Errorf("PairKey(%s, %s) != PairKey(%s, %s)", a, b, b, a)
			}
		}
	}
}

func TestPairKeyFollowsCanonicalOrder(t *testing.T) {
	key := PairKey(model.CategoryResilience, model.CategoryInnovation)
	if key != "innovation-resilience" {
		t.Errorf("key %q, want innovation-resilience", key)
	}
}

func TestPersonaForPairCoversAllPairs(t *testing.T) {
	types := make(map[model.PersonaType]bool)
	for i, a := range model.Categories {
		for _, b := range model.Categories[i+1:] {
			p, ok := PersonaForPair(a, b)
			if !ok {
				t.Fatalf("no persona for pair (%s, %s)", a, b)
			}
			if types[p.Type] {
				t.Errorf("persona %s returned for more than one pair", p.Type)
			}
			types[p.Type] = true
		}
	}
	if len(types) != 10 {
		t.Errorf("distinct personas %d, want 10", len(types))
	}
}

func TestStrengthsSummaryPointsMissForUnknownKey(t *testing.T) {
	if _, ok := StrengthsSummaryPoints(model.PersonaType("nope"), model.VariantBalanced); ok {
		t.Error("lookup succeeded for unknown persona type")
	}
}

func TestReframingForEveryCategory(t *testing.T) {
	for _, c := range model.Categories {
		r, ok := ReframingFor(c)
		if !ok {
			t.Fatalf("no reframing for %s", c)
		}
		if r.LowScoreLabel == "" || r.LowScoreDescription == "" || r.VisualTone == "" {
			t.Errorf("reframing for %s has empty fields", c)
		}
	}
}

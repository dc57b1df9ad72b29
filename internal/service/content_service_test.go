package service

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

var allPersonaTypes = []model.PersonaType{
	model.PersonaVisionaryBuilder,
	model.PersonaTrendSetter,
	model.PersonaCreativeCatalyst,
	model.PersonaPioneeringExplorer,
	model.PersonaStrategicDriver,
	model.PersonaReliableOrchestrator,
	model.PersonaSteadfastAchiever,
	model.PersonaCommunityConnector,
	model.PersonaResilientAdvocate,
	model.PersonaGroundedHarmonizer,
}

var allVariants = []model.TemplateVariant{
	model.VariantBalanced,
	model.VariantSpiked,
	model.VariantMixed,
}

func TestBuildStrengthsSummaryJoinsThreePoints(t *testing.T) {
	svc := NewContentService()

	for _, p := range allPersonaTypes {
		for _, v := range allVariants {
			summary, err := svc.BuildStrengthsSummary(p, v)
			if err != nil {
				t.Fatalf("BuildStrengthsSummary(%s, %s): %v", p, v, err)
			}
			points := strings.Split(summary, "\n\n")
			if len(points) != 3 {
				t.Errorf("%s/%s has %d points, want 3", p, v, len(points))
			}
			for i, point := range points {
				if strings.TrimSpace(point) == "" {
					t.Errorf("%s/%s point %d is empty", p, v, i+1)
				}
			}
		}
	}
}

func TestBuildStrengthsSummaryUnknownCombination(t *testing.T) {
	svc := NewContentService()

	_, err := svc.BuildStrengthsSummary(model.PersonaType("unknown"), model.VariantBalanced)
	if err == nil {
		t.Fatal("expected error for unknown persona, got nil")
	}
	var ierr *InvariantError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected InvariantError, got %T: %v", err, err)
	}
}

func TestSelectScenariosPrefersTopCategory(t *testing.T) {
	svc := NewContentService()
	// Canonical descending scores: rank 1 innovation, rank 2 execution.
	ranked := rankedScores([5]float64{90, 85, 60, 50, 40})

	scenarios, err := svc.SelectScenarios(ranked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("selected %d scenarios, want 3", len(scenarios))
	}

	// Four pool entries relate to innovation, so all three slots fill
	// with rank-1 scenarios in pool order.
	want := []string{
		"Launching the unproven project",
		"Reframing a stale product",
		"The cross-team invention sprint",
	}
	for i, sc := range scenarios {
		if sc.Title != want[i] {
			t.Errorf("scenario %d is %q, want %q", i, sc.Title, want[i])
		}
		if sc.Description == "" {
			t.Errorf("scenario %q has no description", sc.Title)
		}
	}
}

func TestSelectScenariosForEveryPair(t *testing.T) {
	svc := NewContentService()

	for i, a := range model.Categories {
		for j, b := range model.Categories {
			if i == j {
				continue
			}
			ranked := rankedPair(a, b)
			scenarios, err := svc.SelectScenarios(ranked)
			if err != nil {
				t.Fatalf("SelectScenarios(%s, %s): %v", a, b, err)
			}
			if len(scenarios) < minScenarios || len(scenarios) > maxScenarios {
				t.Errorf("pair (%s, %s) selected %d scenarios, want %d-%d", a, b, len(scenarios), minScenarios, maxScenarios)
			}
		}
	}
}

// rankedPair builds a ranked score set with a first and b second.
func rankedPair(a, b model.Category) []model.CategoryScore {
	ranked := []model.CategoryScore{
		{Category: a, NormalizedScore: 90, Rank: 1},
		{Category: b, NormalizedScore: 85, Rank: 2},
	}
	rank := 3
	for _, c := range model.Categories {
		if c == a || c == b {
			continue
		}
		ranked = append(ranked, model.CategoryScore{
			Category:        c,
			NormalizedScore: float64(70 - rank*5),
			Rank:            rank,
		})
		rank++
	}
	return ranked
}

func TestReframeLowScoresReturnsBottomTwoInRankOrder(t *testing.T) {
	svc := NewContentService()
	// Rank 4 is collaboration, rank 5 resilience.
	ranked := rankedScores([5]float64{90, 85, 60, 50, 40})

	reframed, err := svc.ReframeLowScores(ranked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reframed) != 2 {
		t.Fatalf("got %d reframings, want 2", len(reframed))
	}
	if reframed[0].Category != model.CategoryCollaboration {
		t.Errorf("first reframing is %s, want collaboration", reframed[0].Category)
	}
	if reframed[0].ReframedLabel != "Independent deep worker" {
		t.Errorf("collaboration reframed as %q", reframed[0].ReframedLabel)
	}
	if reframed[1].Category != model.CategoryResilience {
		t.Errorf("second reframing is %s, want resilience", reframed[1].Category)
	}
	if reframed[1].ReframedLabel != "Sustainable-pace professional" {
		t.Errorf("resilience reframed as %q", reframed[1].ReframedLabel)
	}
	for _, r := range reframed {
		if r.ReframedDescription == "" {
			t.Errorf("reframing for %s has no description", r.Category)
		}
	}
}

func TestBuildShadowText(t *testing.T) {
	svc := NewContentService()
	persona := model.Persona{
		ShadowSides: []string{"overcommitting to novelty", "skipping maintenance work"},
	}
	reframed := []model.ReframedCategory{
		{ReframedLabel: "Independent deep worker"},
		{ReframedLabel: "Sustainable-pace professional"},
	}

	got := svc.BuildShadowText(persona, reframed)
	want := "Watch for overcommitting to novelty, and skipping maintenance work. " +
		"Partners who lead as a Independent deep worker or a Sustainable-pace professional complement these tendencies well."
	if got != want {
		t.Errorf("shadow text:\n got %q\nwant %q", got, want)
	}

	bare := svc.BuildShadowText(persona, nil)
	if bare != "Watch for overcommitting to novelty, and skipping maintenance work." {
		t.Errorf("shadow text without reframings: %q", bare)
	}
}

func TestAssembleBrief(t *testing.T) {
	content := NewContentService()
	personas := NewPersonaService()
	ranked := rankedScores([5]float64{90, 85, 60, 50, 40})

	persona, err := personas.Resolve(ranked)
	if err != nil {
		t.Fatalf("resolve persona: %v", err)
	}

	brief, err := content.AssembleBrief(persona, model.VariantSpiked, ranked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if brief.PersonaType != model.PersonaVisionaryBuilder {
		t.Errorf("persona %s, want visionary_builder", brief.PersonaType)
	}
	if brief.Variant != model.VariantSpiked {
		t.Errorf("variant %s, want spiked", brief.Variant)
	}
	if brief.TopCategories != [2]model.Category{model.CategoryInnovation, model.CategoryExecution} {
		t.Errorf("top categories %v", brief.TopCategories)
	}
	// (90+85+60+50+40)/5 = 65.
	if brief.TotalScore != 65 {
		t.Errorf("total score %v, want 65", brief.TotalScore)
	}
	if brief.StrengthsSummary == "" || brief.ShadowSides == "" {
		t.Error("brief is missing narrative sections")
	}
	if len(brief.StrengthsScenarios) != 3 {
		t.Errorf("brief has %d scenarios, want 3", len(brief.StrengthsScenarios))
	}
	if len(brief.LowScoreReframing) != 2 {
		t.Errorf("brief has %d reframings, want 2", len(brief.LowScoreReframing))
	}
	if len(brief.BrandingKeywords) != 5 {
		t.Errorf("brief has %d branding keywords, want 5", len(brief.BrandingKeywords))
	}
	if brief.ID != "" || !brief.GeneratedAt.IsZero() || brief.SessionID != "" {
		t.Error("assembly must leave identifier and timestamp fields for the caller")
	}

	// Assembly is deterministic for identical inputs.
	again, err := content.AssembleBrief(persona, model.VariantSpiked, ranked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(brief, again) {
		t.Error("two assemblies of the same inputs differ")
	}
}

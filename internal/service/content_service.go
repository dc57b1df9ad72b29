package service

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/content"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// lowScoreRankFloor marks the bottom-2 band. With exactly 5 ranks this
// always selects two categories.
const lowScoreRankFloor = 4

// maxScenarios and minScenarios bound the strengths scenario list.
const (
	maxScenarios = 3
	minScenarios = 2
)

// ContentService selects pre-authored narrative content for a resolved
// persona and variant. It only picks and concatenates template
// fragments; it generates no prose of its own.
type ContentService struct{}

// NewContentService creates a new content service.
func NewContentService() *ContentService {
	return &ContentService{}
}

// BuildStrengthsSummary joins the 3 template points for the exact
// (persona, variant) combination with blank-line separators.
func (s *ContentService) BuildStrengthsSummary(p model.PersonaType, v model.TemplateVariant) (string, error) {
	points, ok := content.StrengthsSummaryPoints(p, v)
	if !ok {
		return "", &InvariantError{Table: "strengths template", Key: fmt.Sprintf("%s/%s", p, v)}
	}
	return strings.Join(points[:], "\n\n"), nil
}

// SelectScenarios filters the scenario pool down to entries touching
// the top-2 categories, ordering rank-1 scenarios first (stable, pool
// order otherwise preserved), and returns at most 3.
func (s *ContentService) SelectScenarios(ranked []model.CategoryScore) ([]model.ScenarioItem, error) {
	first, err := categoryAtRank(ranked, 1)
	if err != nil {
		return nil, err
	}
	second, err := categoryAtRank(ranked, 2)
	if err != nil {
		return nil, err
	}

	var primary, secondary []model.ScenarioItem
	for _, sc := range content.Scenarios() {
		item := model.ScenarioItem{Title: sc.Title, Description: sc.Description}
		switch {
		case relatesTo(sc, first):
			primary = append(primary, item)
		case relatesTo(sc, second):
			secondary = append(secondary, item)
		}
	}
	selected := append(primary, secondary...)
	if len(selected) == 0 {
		return nil, &InvariantError{Table: "scenario", Key: content.PairKey(first, second)}
	}
	if len(selected) > maxScenarios {
		selected = selected[:maxScenarios]
	}
	return selected, nil
}

func relatesTo(sc content.ScenarioTemplate, c model.Category) bool {
	for _, rc := range sc.RelatedCategories {
		if rc == c {
			return true
		}
	}
	return false
}

// ReframeLowScores emits the positive reframing for every category
// ranked 4th or 5th. With five fixed categories this is always two
// entries, ordered by rank.
func (s *ContentService) ReframeLowScores(ranked []model.CategoryScore) ([]model.ReframedCategory, error) {
	var out []model.ReframedCategory
	for rank := lowScoreRankFloor; rank <= len(model.Categories); rank++ {
		c, err := categoryAtRank(ranked, rank)
		if err != nil {
			return nil, err
		}
		strategy, ok := content.ReframingFor(c)
		if !ok {
			return nil, &InvariantError{Table: "reframing", Key: string(c)}
		}
		out = append(out, model.ReframedCategory{
			Category:            c,
			ReframedLabel:       strategy.LowScoreLabel,
			ReframedDescription: strategy.LowScoreDescription,
		})
	}
	return out, nil
}

// BuildShadowText concatenates the persona's shadow sides into a
// sentence and, when reframings exist, appends a sentence casting
// their labels as complementary partner styles.
func (s *ContentService) BuildShadowText(p model.Persona, reframed []model.ReframedCategory) string {
	text := fmt.Sprintf("Watch for %s.", strings.Join(p.ShadowSides, ", and "))
	if len(reframed) == 0 {
		return text
	}
	labels := make([]string, 0, len(reframed))
	for _, r := range reframed {
		labels = append(labels, r.ReframedLabel)
	}
	return fmt.Sprintf("%s Partners who lead as a %s complement these tendencies well.",
		text, strings.Join(labels, " or a "))
}

// AssembleBrief builds the full analysis body from a resolved persona,
// classified variant, and ranked scores. Identifier and timestamp
// fields are left for the caller to stamp.
func (s *ContentService) AssembleBrief(persona model.Persona, variant model.TemplateVariant, ranked []model.CategoryScore) (*model.BriefAnalysis, error) {
	first, err := categoryAtRank(ranked, 1)
	if err != nil {
		return nil, err
	}
	second, err := categoryAtRank(ranked, 2)
	if err != nil {
		return nil, err
	}

	summary, err := s.BuildStrengthsSummary(persona.Type, variant)
	if err != nil {
		return nil, err
	}
	scenarios, err := s.SelectScenarios(ranked)
	if err != nil {
		return nil, err
	}
	reframed, err := s.ReframeLowScores(ranked)
	if err != nil {
		return nil, err
	}

	normalized := make([]float64, 0, len(ranked))
	for _, cs := range ranked {
		normalized = append(normalized, cs.NormalizedScore)
	}
	mean, err := stats.Mean(normalized)
	if err != nil {
		return nil, fmt.Errorf("total score: %w", err)
	}
	total, _ := stats.Round(mean, 1)

	return &model.BriefAnalysis{
		PersonaType:        persona.Type,
		Title:              persona.Title,
		Tagline:            persona.Tagline,
		Description:        persona.Description,
		Variant:            variant,
		CategoryScores:     ranked,
		TotalScore:         total,
		TopCategories:      [2]model.Category{first, second},
		StrengthsSummary:   summary,
		StrengthsScenarios: scenarios,
		ShadowSides:        s.BuildShadowText(persona, reframed),
		BrandingKeywords:   persona.BrandingKeywords,
		LowScoreReframing:  reframed,
	}, nil
}

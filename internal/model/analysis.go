package model

import "time"

// CategoryScore is the aggregated result for one dimension. Rank is 0
// until the ranker assigns it; ranks 1-5 form a permutation, 1 highest.
type CategoryScore struct {
	Category        Category `json:"category" bson:"category"`
	RawScore        float64  `json:"rawScore" bson:"rawScore"`               // mean of effective 1-7 items
	NormalizedScore float64  `json:"normalizedScore" bson:"normalizedScore"` // 0-100, one decimal
	Rank            int      `json:"rank" bson:"rank"`
}

// TemplateVariant is the coarse shape classification of a score profile.
type TemplateVariant string

const (
	VariantBalanced TemplateVariant = "balanced"
	VariantSpiked   TemplateVariant = "spiked"
	VariantMixed    TemplateVariant = "mixed"
)

// ScenarioItem is one selected strengths scenario.
type ScenarioItem struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// ReframedCategory recasts a bottom-ranked dimension as a
// positively-framed alternate style.
type ReframedCategory struct {
	Category            Category `json:"category" bson:"category"`
	ReframedLabel       string   `json:"reframedLabel" bson:"reframedLabel"`
	ReframedDescription string   `json:"reframedDescription" bson:"reframedDescription"`
}

// BriefAnalysis is the assembled engine output for one session. It is
// recomputed fresh on every analysis request, never patched in place.
type BriefAnalysis struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	SessionID string `json:"sessionId" bson:"sessionId"`

	PersonaType PersonaType `json:"personaType" bson:"personaType"`
	Title       string      `json:"title" bson:"title"`
	Tagline     string      `json:"tagline" bson:"tagline"`
	Description string      `json:"description" bson:"description"`

	Variant        TemplateVariant `json:"variant" bson:"variant"`
	CategoryScores []CategoryScore `json:"categoryScores" bson:"categoryScores"` // ranked, 5 entries
	TotalScore     float64         `json:"totalScore" bson:"totalScore"`         // mean of normalized scores
	TopCategories  [2]Category     `json:"topCategories" bson:"topCategories"`   // ranks 1-2

	StrengthsSummary   string             `json:"strengthsSummary" bson:"strengthsSummary"`
	StrengthsScenarios []ScenarioItem     `json:"strengthsScenarios" bson:"strengthsScenarios"` // 2-3 items
	ShadowSides        string             `json:"shadowSides" bson:"shadowSides"`
	BrandingKeywords   []string           `json:"brandingKeywords" bson:"brandingKeywords"`
	LowScoreReframing  []ReframedCategory `json:"lowScoreReframing" bson:"lowScoreReframing"`

	GeneratedAt time.Time `json:"generatedAt" bson:"generatedAt"`
}

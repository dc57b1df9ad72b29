package model

// PersonaType identifies one of the ten fixed branding archetypes.
type PersonaType string

const (
	PersonaVisionaryBuilder     PersonaType = "visionary_builder"     // innovation + execution
	PersonaTrendSetter          PersonaType = "trend_setter"          // innovation + influence
	PersonaCreativeCatalyst     PersonaType = "creative_catalyst"     // innovation + collaboration
	PersonaPioneeringExplorer   PersonaType = "pioneering_explorer"   // innovation + resilience
	PersonaStrategicDriver      PersonaType = "strategic_driver"      // execution + influence
	PersonaReliableOrchestrator PersonaType = "reliable_orchestrator" // execution + collaboration
	PersonaSteadfastAchiever    PersonaType = "steadfast_achiever"    // execution + resilience
	PersonaCommunityConnector   PersonaType = "community_connector"   // influence + collaboration
	PersonaResilientAdvocate    PersonaType = "resilient_advocate"    // influence + resilience
	PersonaGroundedHarmonizer   PersonaType = "grounded_harmonizer"   // collaboration + resilience
)

// Persona is static reference data keyed by an unordered pair of
// top-2 categories. Never mutated at runtime.
type Persona struct {
	Type             PersonaType `json:"type" bson:"type"`
	Title            string      `json:"title" bson:"title"`
	Tagline          string      `json:"tagline" bson:"tagline"`
	Description      string      `json:"description" bson:"description"`
	Strengths        []string    `json:"strengths" bson:"strengths"`
	ShadowSides      []string    `json:"shadowSides" bson:"shadowSides"`
	BrandingKeywords []string    `json:"brandingKeywords" bson:"brandingKeywords"`
}

package content

import (
	"fmt"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// PairKey normalizes an unordered category pair into the lookup key
// used by the persona table. Both orderings of the same pair produce
// the same key; canonical category order decides which comes first.
func PairKey(a, b model.Category) string {
	if a.CanonicalIndex() > b.CanonicalIndex() {
		a, b = b, a
	}
	return fmt.Sprintf("%s-%s", a, b)
}

// personaByPair maps each of the C(5,2)=10 unordered top-2 pairs to
// its persona. The mapping is a bijection; Verify checks it on boot.
var personaByPair = map[string]model.Persona{
	PairKey(model.CategoryInnovation, model.CategoryExecution): {
		Type:        model.PersonaVisionaryBuilder,
		Title:       "Visionary Builder",
		Tagline:     "Turns bold ideas into shipped reality",
		Description: "You pair original thinking with the discipline to finish. Where others stop at the concept, you draw the roadmap, clear the blockers, and deliver something people can actually use.",
		Strengths: []string{
			"Translating ambiguous ideas into concrete plans",
			"Shipping consistently without losing the original vision",
			"Spotting which experiments deserve real investment",
		},
		ShadowSides: []string{
			"impatience with slow consensus",
			"taking on too much of the build alone",
		},
		BrandingKeywords: []string{"builder", "prototype", "roadmap", "momentum", "founder energy"},
	},
	PairKey(model.CategoryInnovation, model.CategoryInfluence): {
		Type:        model.PersonaTrendSetter,
		Title:       "Trend Setter",
		Tagline:     "Makes new ideas impossible to ignore",
		Description: "You see what is coming before the crowd does, and you know how to tell the story so others see it too. Your brand grows at the intersection of novelty and narrative.",
		Strengths: []string{
			"Framing emerging ideas in language people remember",
			"Building audiences around a fresh point of view",
			"Reading cultural and market signals early",
		},
		ShadowSides: []string{
			"chasing novelty over depth",
			"restlessness once an idea becomes mainstream",
		},
		BrandingKeywords: []string{"storyteller", "early adopter", "point of view", "signal", "thought leadership"},
	},
	PairKey(model.CategoryInnovation, model.CategoryCollaboration): {
		Type:        model.PersonaCreativeCatalyst,
		Title:       "Creative Catalyst",
		Tagline:     "Sparks the best ideas out of other people",
		Description: "Your creativity multiplies in groups. You connect half-formed thoughts across people and disciplines until something genuinely new appears, and everyone feels it was theirs.",
		Strengths: []string{
			"Running sessions where quiet people contribute big ideas",
			"Combining perspectives from unrelated fields",
			"Turning team friction into creative tension",
		},
		ShadowSides: []string{
			"losing interest once the brainstorm ends",
			"underselling your own authorship",
		},
		BrandingKeywords: []string{"catalyst", "co-creation", "workshop", "cross-pollination", "ideation"},
	},
	PairKey(model.CategoryInnovation, model.CategoryResilience): {
		Type:        model.PersonaPioneeringExplorer,
		Title:       "Pioneering Explorer",
		Tagline:     "Keeps inventing long after others turn back",
		Description: "You combine curiosity with endurance. Dead ends do not discourage you; they narrow the map. Your brand is built on going where the path is not yet drawn and coming back with proof.",
		Strengths: []string{
			"Sustaining experiments through repeated failure",
			"Finding unconventional routes around hard constraints",
			"Staying calm and curious in unmapped territory",
		},
		ShadowSides: []string{
			"working solo past the point it helps",
			"dismissing proven approaches too quickly",
		},
		BrandingKeywords: []string{"explorer", "frontier", "experiment", "grit", "uncharted"},
	},
	PairKey(model.CategoryExecution, model.CategoryInfluence): {
		Type:        model.PersonaStrategicDriver,
		Title:       "Strategic Driver",
		Tagline:     "Gets the important things decided and done",
		Description: "You move organizations, not just tasks. You know which outcome matters, you can argue for it in any room, and you keep the pressure on until the result lands.",
		Strengths: []string{
			"Aligning stakeholders behind a clear priority",
			"Converting strategy decks into delivery plans",
			"Holding the line on scope and deadlines",
		},
		ShadowSides: []string{
			"steamrolling quieter voices",
			"measuring people only by output",
		},
		BrandingKeywords: []string{"operator", "strategy", "alignment", "delivery", "decisiveness"},
	},
	PairKey(model.CategoryExecution, model.CategoryCollaboration): {
		Type:        model.PersonaReliableOrchestrator,
		Title:       "Reliable Orchestrator",
		Tagline:     "The person teams build their plans around",
		Description: "You make groups dependable. Commitments made near you get kept, handoffs stop dropping, and people relax because someone is clearly holding the whole picture.",
		Strengths: []string{
			"Coordinating many moving parts without drama",
			"Making dependencies and owners explicit",
			"Delivering steadily while keeping the team healthy",
		},
		ShadowSides: []string{
			"absorbing everyone else's loose ends",
			"avoiding conflict to keep things smooth",
		},
		BrandingKeywords: []string{"orchestrator", "dependable", "coordination", "trust", "follow-through"},
	},
	PairKey(model.CategoryExecution, model.CategoryResilience): {
		Type:        model.PersonaSteadfastAchiever,
		Title:       "Steadfast Achiever",
		Tagline:     "Delivers through conditions that stop other people",
		Description: "Your results do not depend on the weather. Pressure, setbacks, and shifting requirements slow you less than almost anyone; you simply reset the plan and keep moving.",
		Strengths: []string{
			"Maintaining output quality under sustained pressure",
			"Recovering quickly from failed launches or missed targets",
			"Breaking intimidating goals into relentless small wins",
		},
		ShadowSides: []string{
			"grinding past the point of diminishing returns",
			"expecting the same endurance from everyone",
		},
		BrandingKeywords: []string{"consistency", "endurance", "discipline", "reliability", "performance"},
	},
	PairKey(model.CategoryInfluence, model.CategoryCollaboration): {
		Type:        model.PersonaCommunityConnector,
		Title:       "Community Connector",
		Tagline:     "Builds the rooms where things happen",
		Description: "Your power is the network you energize. You bring the right people together, give the group a voice, and turn loose contacts into communities that act.",
		Strengths: []string{
			"Creating belonging in new or fractured groups",
			"Matchmaking people whose work should meet",
			"Speaking for a community without overshadowing it",
		},
		ShadowSides: []string{
			"spreading attention across too many relationships",
			"outsourcing your own position to group consensus",
		},
		BrandingKeywords: []string{"connector", "community", "network", "belonging", "convener"},
	},
	PairKey(model.CategoryInfluence, model.CategoryResilience): {
		Type:        model.PersonaResilientAdvocate,
		Title:       "Resilient Advocate",
		Tagline:     "Keeps making the case until the room moves",
		Description: "You champion ideas and people through resistance. Rejection does not lower your voice; it refines your argument. Your brand stands for conviction that survives pushback.",
		Strengths: []string{
			"Persuading skeptical audiences over repeated attempts",
			"Representing a cause credibly under public pressure",
			"Turning criticism into sharper positioning",
		},
		ShadowSides: []string{
			"digging in when the evidence has shifted",
			"carrying every fight personally",
		},
		BrandingKeywords: []string{"advocate", "conviction", "voice", "persistence", "credibility"},
	},
	PairKey(model.CategoryCollaboration, model.CategoryResilience): {
		Type:        model.PersonaGroundedHarmonizer,
		Title:       "Grounded Harmonizer",
		Tagline:     "The steady center teams hold onto",
		Description: "You keep groups whole when times are hard. People bring you their friction because you absorb stress without passing it on, and the team's trust compounds around you.",
		Strengths: []string{
			"Stabilizing teams through turbulence and turnover",
			"Mediating conflict without leaving losers",
			"Modeling sustainable pace in high-stress work",
		},
		ShadowSides: []string{
			"swallowing your own needs to keep the peace",
			"moving slowly on decisions that need an edge",
		},
		BrandingKeywords: []string{"anchor", "harmony", "stability", "mediation", "trust"},
	},
}

// PersonaForPair resolves the persona for an unordered category pair.
// The bool is false when no entry exists, which means the table itself
// is broken, not that the input was bad.
func PersonaForPair(a, b model.Category) (model.Persona, bool) {
	p, ok := personaByPair[PairKey(a, b)]
	return p, ok
}

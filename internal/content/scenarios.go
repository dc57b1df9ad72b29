package content

import "github.com/Yngie-C/personal-branding-report-sub001/internal/model"

// ScenarioTemplate is one pre-authored strengths scenario. A scenario
// is selectable when RelatedCategories intersects the user's top-2.
type ScenarioTemplate struct {
	Title             string
	Description       string
	RelatedCategories []model.Category
}

// scenarioPool is the static many-to-many scenario table. Every
// category appears in at least two scenarios so any top-2 pair can
// always fill the 2-3 slots; Verify checks that on boot.
var scenarioPool = []ScenarioTemplate{
	{
		Title:       "Launching the unproven project",
		Description: "A new initiative with no playbook lands on your desk. You sketch the first version while others are still debating feasibility, and your early prototype becomes the plan of record.",
		RelatedCategories: []model.Category{
			model.CategoryInnovation, model.CategoryExecution,
		},
	},
	{
		Title:       "Reframing a stale product",
		Description: "A mature offering is losing attention. You find the unexpected angle, repackage the story, and the market treats it like a new release.",
		RelatedCategories: []model.Category{
			model.CategoryInnovation, model.CategoryInfluence,
		},
	},
	{
		Title:       "The cross-team invention sprint",
		Description: "Two departments with different vocabularies need one solution. You run the room so both sides build on each other, and the result belongs to everyone.",
		RelatedCategories: []model.Category{
			model.CategoryInnovation, model.CategoryCollaboration,
		},
	},
	{
		Title:       "The long experiment nobody else would run",
		Description: "Months of dead ends would have killed the project under anyone else. You keep iterating past the discouraging middle, and version nine is the one that works.",
		RelatedCategories: []model.Category{
			model.CategoryInnovation, model.CategoryResilience,
		},
	},
	{
		Title:       "Rescuing the slipping deadline",
		Description: "A critical delivery is drifting. You cut scope with surgical judgment, re-sequence the work, and land the release without burning the team.",
		RelatedCategories: []model.Category{
			model.CategoryExecution, model.CategoryResilience,
		},
	},
	{
		Title:       "Winning the skeptical room",
		Description: "The decision-makers arrive opposed. You lay out the case in their language, take the hard questions head-on, and leave with the mandate.",
		RelatedCategories: []model.Category{
			model.CategoryInfluence, model.CategoryExecution,
		},
	},
	{
		Title:       "The program with too many moving parts",
		Description: "Five workstreams, three vendors, one date. You make every dependency visible, keep every owner honest, and the integration day is quiet.",
		RelatedCategories: []model.Category{
			model.CategoryExecution, model.CategoryCollaboration,
		},
	},
	{
		Title:       "Building the community from zero",
		Description: "There is no group for people like your audience, so you create one. Within a year the gatherings you host are where the field's real conversations happen.",
		RelatedCategories: []model.Category{
			model.CategoryInfluence, model.CategoryCollaboration,
		},
	},
	{
		Title:       "Holding the line on an unpopular call",
		Description: "You are early and alone on a position that matters. You absorb the pushback, keep refining the argument, and the organization eventually turns your way.",
		RelatedCategories: []model.Category{
			model.CategoryInfluence, model.CategoryResilience,
		},
	},
	{
		Title:       "Steadying the team through the rough quarter",
		Description: "Layoffs, pivots, and low morale hit at once. You keep people talking, keep the pace humane, and the team that could have scattered comes out stronger.",
		RelatedCategories: []model.Category{
			model.CategoryCollaboration, model.CategoryResilience,
		},
	},
}

// Scenarios returns the full static pool.
func Scenarios() []ScenarioTemplate {
	return scenarioPool
}

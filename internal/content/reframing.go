package content

import "github.com/Yngie-C/personal-branding-report-sub001/internal/model"

// ReframingStrategy recasts a bottom-2 category as a positive style
// instead of a weakness. Exactly one entry exists per category.
type ReframingStrategy struct {
	LowScoreLabel       string
	LowScoreDescription string
	VisualTone          string
}

var reframingByCategory = map[model.Category]ReframingStrategy{
	model.CategoryInnovation: {
		LowScoreLabel:       "Proven-path pragmatist",
		LowScoreDescription: "You reach for approaches that already work rather than reinventing for its own sake, which keeps your results predictable and your credibility high.",
		VisualTone:          "slate",
	},
	model.CategoryExecution: {
		LowScoreLabel:       "Deliberate strategist",
		LowScoreDescription: "You invest in direction before motion. Less raw throughput, but the work you do ship points the right way.",
		VisualTone:          "indigo",
	},
	model.CategoryInfluence: {
		LowScoreLabel:       "Quiet craftsperson",
		LowScoreDescription: "You let the work speak instead of the pitch. People who look closely trust you faster because nothing is oversold.",
		VisualTone:          "moss",
	},
	model.CategoryCollaboration: {
		LowScoreLabel:       "Independent deep worker",
		LowScoreDescription: "You produce your best thinking in focused solitude, bringing groups finished ideas rather than meetings.",
		VisualTone:          "ochre",
	},
	model.CategoryResilience: {
		LowScoreLabel:       "Sustainable-pace professional",
		LowScoreDescription: "You treat energy as a budget, not a test of character, so your output stays consistent without hero sprints.",
		VisualTone:          "teal",
	},
}

// ReframingFor returns the single reframing strategy for a category.
func ReframingFor(c model.Category) (ReframingStrategy, bool) {
	r, ok := reframingByCategory[c]
	return r, ok
}

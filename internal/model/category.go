package model

import "fmt"

// Category is one of the five fixed competency dimensions surveyed
// across 12 questions each.
type Category string

const (
	CategoryInnovation    Category = "innovation"
	CategoryExecution     Category = "execution"
	CategoryInfluence     Category = "influence"
	CategoryCollaboration Category = "collaboration"
	CategoryResilience    Category = "resilience"
)

// Categories is the canonical ordering. Rank tie-breaks and pair-key
// normalization both depend on this order, so it must never change.
var Categories = [5]Category{
	CategoryInnovation,
	CategoryExecution,
	CategoryInfluence,
	CategoryCollaboration,
	CategoryResilience,
}

// QuestionsPerCategory is the fixed bank size per dimension.
const QuestionsPerCategory = 12

// TotalQuestions is the fixed bank size for one analysis run.
const TotalQuestions = 60

// CanonicalIndex returns the position of c in the canonical ordering,
// or -1 for an unknown category.
func (c Category) CanonicalIndex() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	return c.CanonicalIndex() >= 0
}

// Label returns the display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryInnovation:
		return "Innovation"
	case CategoryExecution:
		return "Execution"
	case CategoryInfluence:
		return "Influence"
	case CategoryCollaboration:
		return "Collaboration"
	case CategoryResilience:
		return "Resilience"
	}
	return string(c)
}

// ParseCategory converts a stored string back into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

package service

import (
	"github.com/Yngie-C/personal-branding-report-sub001/internal/content"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// PersonaService maps top-2 ranked categories onto the ten fixed
// branding personas.
type PersonaService struct{}

// NewPersonaService creates a new persona service.
func NewPersonaService() *PersonaService {
	return &PersonaService{}
}

// Resolve picks the persona for the categories holding rank 1 and 2.
// A lookup miss is an InvariantError: the static table covers every
// pair, so a miss means the table is broken, not the input.
func (s *PersonaService) Resolve(ranked []model.CategoryScore) (model.Persona, error) {
	first, err := categoryAtRank(ranked, 1)
	if err != nil {
		return model.Persona{}, err
	}
	second, err := categoryAtRank(ranked, 2)
	if err != nil {
		return model.Persona{}, err
	}
	return s.ResolvePair(first, second)
}

// ResolvePair resolves a persona from a stored top-category pair, e.g.
// one loaded from persistence, without recomputing ranks. Pair order
// does not matter; both orderings yield the same persona.
func (s *PersonaService) ResolvePair(a, b model.Category) (model.Persona, error) {
	p, ok := content.PersonaForPair(a, b)
	if !ok {
		return model.Persona{}, &InvariantError{Table: "persona", Key: content.PairKey(a, b)}
	}
	return p, nil
}

package service

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// Variant classification thresholds. Hand-tuned in the original report
// engine; persona and template selection depend on reproducing these
// boundaries exactly.
const (
	balancedTopFloor    = 70.0
	balancedBottomFloor = 50.0
	spikedTopFloor      = 75.0
	spikedBottomCeiling = 50.0
)

// ScoreService converts raw Likert answers into ranked category scores
// and classifies the overall score pattern. All methods are pure.
type ScoreService struct{}

// NewScoreService creates a new score service.
func NewScoreService() *ScoreService {
	return &ScoreService{}
}

// ComputeScores aggregates exactly 60 answers into 5 category scores,
// applying per-question reverse scoring from the supplied metadata.
// Ranks are left unset; RankCategories assigns them.
func (s *ScoreService) ComputeScores(answers []model.SurveyAnswer, questions []model.QuestionMetadata) ([]model.CategoryScore, error) {
	if len(answers) != model.TotalQuestions {
		return nil, &ValidationError{Field: "answers", Reason: fmt.Sprintf("got %d, want %d", len(answers), model.TotalQuestions)}
	}
	if len(questions) != model.TotalQuestions {
		return nil, &ValidationError{Field: "questions", Reason: fmt.Sprintf("got %d, want %d", len(questions), model.TotalQuestions)}
	}

	metaByID := make(map[string]model.QuestionMetadata, len(questions))
	perCategory := make(map[model.Category]int, len(model.Categories))
	for _, q := range questions {
		if !q.Category.Valid() {
			return nil, &ValidationError{Field: "questions", Reason: fmt.Sprintf("question %s has unknown category %q", q.ID, q.Category)}
		}
		if _, dup := metaByID[q.ID]; dup {
			return nil, &ValidationError{Field: "questions", Reason: fmt.Sprintf("duplicate question id %s", q.ID)}
		}
		metaByID[q.ID] = q
		perCategory[q.Category]++
	}
	for _, c := range model.Categories {
		if perCategory[c] != model.QuestionsPerCategory {
			return nil, &ValidationError{Field: "questions", Reason: fmt.Sprintf("category %s has %d questions, want %d", c, perCategory[c], model.QuestionsPerCategory)}
		}
	}

	items := make(map[model.Category][]float64, len(model.Categories))
	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		if a.Score < model.LikertMin || a.Score > model.LikertMax {
			return nil, &ValidationError{Field: "answers", Reason: fmt.Sprintf("question %s scored %d, outside [%d,%d]", a.QuestionID, a.Score, model.LikertMin, model.LikertMax)}
		}
		meta, ok := metaByID[a.QuestionID]
		if !ok {
			return nil, &ValidationError{Field: "answers", Reason: fmt.Sprintf("no metadata for question %s", a.QuestionID)}
		}
		if answered[a.QuestionID] {
			return nil, &ValidationError{Field: "answers", Reason: fmt.Sprintf("question %s answered more than once", a.QuestionID)}
		}
		answered[a.QuestionID] = true

		effective := float64(a.Score)
		if meta.IsReverseScored {
			effective = float64(model.LikertMax + model.LikertMin - a.Score)
		}
		items[meta.Category] = append(items[meta.Category], effective)
	}

	scores := make([]model.CategoryScore, 0, len(model.Categories))
	for _, c := range model.Categories {
		raw, err := stats.Mean(items[c])
		if err != nil {
			return nil, fmt.Errorf("mean for %s: %w", c, err)
		}
		scores = append(scores, model.CategoryScore{
			Category:        c,
			RawScore:        raw,
			NormalizedScore: normalize(raw),
		})
	}
	return scores, nil
}

// normalize rescales a 1-7 mean onto 0-100 with one decimal, clamped.
func normalize(raw float64) float64 {
	n, _ := stats.Round((raw-1)/6*100, 1)
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// RankCategories assigns dense ranks 1-5 by descending normalized
// score. Ties break by canonical category order (Innovation first),
// deliberately explicit because persona selection depends on it.
func (s *ScoreService) RankCategories(scores []model.CategoryScore) ([]model.CategoryScore, error) {
	if len(scores) != len(model.Categories) {
		return nil, &ValidationError{Field: "scores", Reason: fmt.Sprintf("got %d categories, want %d", len(scores), len(model.Categories))}
	}
	ranked := make([]model.CategoryScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].NormalizedScore != ranked[j].NormalizedScore {
			return ranked[i].NormalizedScore > ranked[j].NormalizedScore
		}
		return ranked[i].Category.CanonicalIndex() < ranked[j].Category.CanonicalIndex()
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}

// ClassifyVariant buckets a ranked profile into balanced, spiked, or
// mixed. Rule order matters: a uniformly high profile satisfies the
// spiked top condition too, so balanced is checked first.
func (s *ScoreService) ClassifyVariant(ranked []model.CategoryScore) (model.TemplateVariant, error) {
	top1, err := scoreAtRank(ranked, 1)
	if err != nil {
		return "", err
	}
	top2, err := scoreAtRank(ranked, 2)
	if err != nil {
		return "", err
	}
	bottom4, err := scoreAtRank(ranked, 4)
	if err != nil {
		return "", err
	}
	bottom5, err := scoreAtRank(ranked, 5)
	if err != nil {
		return "", err
	}

	if top1 > balancedTopFloor && top2 > balancedTopFloor &&
		bottom4 > balancedBottomFloor && bottom5 > balancedBottomFloor {
		return model.VariantBalanced, nil
	}
	if top1 > spikedTopFloor && top2 > spikedTopFloor &&
		(bottom4 < spikedBottomCeiling || bottom5 < spikedBottomCeiling) {
		return model.VariantSpiked, nil
	}
	return model.VariantMixed, nil
}

func scoreAtRank(ranked []model.CategoryScore, rank int) (float64, error) {
	for _, cs := range ranked {
		if cs.Rank == rank {
			return cs.NormalizedScore, nil
		}
	}
	return 0, &ValidationError{Field: "scores", Reason: fmt.Sprintf("no category holds rank %d", rank)}
}

// categoryAtRank returns the category holding the given rank.
func categoryAtRank(ranked []model.CategoryScore, rank int) (model.Category, error) {
	for _, cs := range ranked {
		if cs.Rank == rank {
			return cs.Category, nil
		}
	}
	return "", &ValidationError{Field: "scores", Reason: fmt.Sprintf("no category holds rank %d", rank)}
}

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// testQuestions builds a full 60-question bank: 12 per category, the
// last three of each category reverse-scored.
func testQuestions() []model.QuestionMetadata {
	var questions []model.QuestionMetadata
	number := 0
	for _, c := range model.Categories {
		for i := 0; i < model.QuestionsPerCategory; i++ {
			number++
			questions = append(questions, model.QuestionMetadata{
				ID:              fmt.Sprintf("q%d", number),
				QuestionNumber:  number,
				Category:        c,
				IsReverseScored: i >= 9,
			})
		}
	}
	return questions
}

// testAnswers answers every question with the given per-category raw
// score.
func testAnswers(questions []model.QuestionMetadata, scoreFor map[model.Category]int) []model.SurveyAnswer {
	var answers []model.SurveyAnswer
	for _, q := range questions {
		answers = append(answers, model.SurveyAnswer{
			SessionID:      "s1",
			QuestionID:     q.ID,
			QuestionNumber: q.QuestionNumber,
			Category:       q.Category,
			Score:          scoreFor[q.Category],
		})
	}
	return answers
}

func uniformScores(score int) map[model.Category]int {
	m := make(map[model.Category]int, len(model.Categories))
	for _, c := range model.Categories {
		m[c] = score
	}
	return m
}

func TestComputeScoresProducesFiveNormalizedCategories(t *testing.T) {
	svc := NewScoreService()
	questions := testQuestions()
	answers := testAnswers(questions, uniformScores(4))

	scores, err := svc.ComputeScores(answers, questions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scores) != 5 {
		t.Fatalf("got %d category scores, want 5", len(scores))
	}
	for _, cs := range scores {
		if cs.NormalizedScore < 0 || cs.NormalizedScore > 100 {
			t.Errorf("category %s normalized to %v, outside [0,100]", cs.Category, cs.NormalizedScore)
		}
		if cs.Rank != 0 {
			t.Errorf("category %s has rank %d before ranking", cs.Category, cs.Rank)
		}
	}
	// Score 4 straight and reversed both yield effective 4: raw mean 4,
	// normalized exactly 50.
	for _, cs := range scores {
		if cs.NormalizedScore != 50 {
			t.Errorf("category %s normalized to %v, want 50", cs.Category, cs.NormalizedScore)
		}
	}
}

func TestComputeScoresReverseScoring(t *testing.T) {
	svc := NewScoreService()
	questions := testQuestions()
	// Everyone answers 7. Reverse items contribute 1, so each category
	// has 9 items at 7 and 3 at 1: raw = (9*7+3*1)/12 = 5.5,
	// normalized = round(((5.5-1)/6)*100, 1) = 75.
	answers := testAnswers(questions, uniformScores(7))

	scores, err := svc.ComputeScores(answers, questions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, cs := range scores {
		if cs.RawScore != 5.5 {
			t.Errorf("category %s raw %v, want 5.5", cs.Category, cs.RawScore)
		}
		if cs.NormalizedScore != 75 {
			t.Errorf("category %s normalized %v, want 75", cs.Category, cs.NormalizedScore)
		}
	}
}

func TestComputeScoresValidation(t *testing.T) {
	svc := NewScoreService()
	questions := testQuestions()
	valid := testAnswers(questions, uniformScores(4))

	cases := []struct {
		name      string
		answers   []model.SurveyAnswer
		questions []model.QuestionMetadata
	}{
		{"too few answers", valid[:59], questions},
		{"too few questions", valid, questions[:59]},
		{
			"score out of range",
			func() []model.SurveyAnswer {
				bad := make([]model.SurveyAnswer, len(valid))
				copy(bad, valid)
				bad[0].Score = 8
				return bad
			}(),
			questions,
		},
		{
			"missing metadata",
			func() []model.SurveyAnswer {
				bad := make([]model.SurveyAnswer, len(valid))
				copy(bad, valid)
				bad[0].QuestionID = "unknown"
				return bad
			}(),
			questions,
		},
		{
			"duplicate answer",
			func() []model.SurveyAnswer {
				bad := make([]model.SurveyAnswer, len(valid))
				copy(bad, valid)
				bad[1].QuestionID = bad[0].QuestionID
				return bad
			}(),
			questions,
		},
		{
			"unbalanced categories",
			valid,
			func() []model.QuestionMetadata {
				bad := make([]model.QuestionMetadata, len(questions))
				copy(bad, questions)
				bad[0].Category = model.CategoryResilience
				return bad
			}(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ComputeScores(tc.answers, tc.questions)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
		})
	}
}

func TestRankCategoriesAssignsPermutation(t *testing.T) {
	svc := NewScoreService()
	scores := []model.CategoryScore{
		{Category: model.CategoryInnovation, NormalizedScore: 62.5},
		{Category: model.CategoryExecution, NormalizedScore: 88.3},
		{Category: model.CategoryInfluence, NormalizedScore: 45.0},
		{Category: model.CategoryCollaboration, NormalizedScore: 71.7},
		{Category: model.CategoryResilience, NormalizedScore: 55.0},
	}

	ranked, err := svc.RankCategories(scores)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[int]model.Category)
	for _, cs := range ranked {
		if prev, dup := seen[cs.Rank]; dup {
			t.Fatalf("rank %d assigned to both %s and %s", cs.Rank, prev, cs.Category)
		}
		seen[cs.Rank] = cs.Category
	}
	for rank := 1; rank <= 5; rank++ {
		if _, ok := seen[rank]; !ok {
			t.Fatalf("rank %d not assigned", rank)
		}
	}
	if seen[1] != model.CategoryExecution {
		t.Errorf("rank 1 is %s, want execution", seen[1])
	}
	if seen[5] != model.CategoryInfluence {
		t.Errorf("rank 5 is %s, want influence", seen[5])
	}
}

func TestRankCategoriesTieBreaksByCanonicalOrder(t *testing.T) {
	svc := NewScoreService()
	scores := []model.CategoryScore{
		{Category: model.CategoryResilience, NormalizedScore: 80},
		{Category: model.CategoryCollaboration, NormalizedScore: 80},
		{Category: model.CategoryInfluence, NormalizedScore: 80},
		{Category: model.CategoryExecution, NormalizedScore: 80},
		{Category: model.CategoryInnovation, NormalizedScore: 80},
	}

	ranked, err := svc.RankCategories(scores)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.Category{
		model.CategoryInnovation,
		model.CategoryExecution,
		model.CategoryInfluence,
		model.CategoryCollaboration,
		model.CategoryResilience,
	}
	for i, cs := range ranked {
		if cs.Category != want[i] || cs.Rank != i+1 {
			t.Errorf("position %d: got %s rank %d, want %s rank %d", i, cs.Category, cs.Rank, want[i], i+1)
		}
	}
}

func rankedScores(normalized [5]float64) []model.CategoryScore {
	ranked := make([]model.CategoryScore, 5)
	for i := range ranked {
		ranked[i] = model.CategoryScore{
			Category:        model.Categories[i],
			NormalizedScore: normalized[i],
			Rank:            i + 1,
		}
	}
	return ranked
}

func TestClassifyVariant(t *testing.T) {
	svc := NewScoreService()

	cases := []struct {
		name       string
		normalized [5]float64
		want       model.TemplateVariant
	}{
		{"balanced profile", [5]float64{80, 78, 65, 60, 55}, model.VariantBalanced},
		{"spiked profile", [5]float64{90, 85, 60, 40, 30}, model.VariantSpiked},
		{"mixed profile", [5]float64{72, 68, 55, 45, 40}, model.VariantMixed},
		// Uniformly high profiles satisfy spiked's top condition but
		// must classify balanced because balanced is checked first.
		{"uniformly high is balanced", [5]float64{90, 88, 85, 80, 78}, model.VariantBalanced},
		{"high top with weak bottom is spiked", [5]float64{95, 80, 60, 55, 20}, model.VariantSpiked},
		{"boundary 70 top is not balanced", [5]float64{70, 70, 60, 55, 52}, model.VariantMixed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.ClassifyVariant(rankedScores(tc.normalized))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

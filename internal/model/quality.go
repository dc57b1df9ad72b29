package model

// Grade buckets a free-text answer's total quality score. Thresholds
// are strict: a total of exactly 90 is excellent, not outstanding.
type Grade string

const (
	GradeOutstanding Grade = "outstanding" // total > 90
	GradeExcellent   Grade = "excellent"   // total > 70
	GradeGood        Grade = "good"        // total > 50
	GradeBasic       Grade = "basic"
)

// QuestionConfig tunes quality scoring for one follow-up question.
// Zero-valued fields fall back to defaults (50 / 150 / no keywords).
type QuestionConfig struct {
	MinCharacters         int      `json:"minCharacters" bson:"minCharacters"`
	RecommendedCharacters int      `json:"recommendedCharacters" bson:"recommendedCharacters"`
	Keywords              []string `json:"keywords" bson:"keywords"`
}

// AnswerQualityResult is the 0-100 grade breakdown for one answer.
// Computed statelessly, not persisted by the engine.
type AnswerQualityResult struct {
	LengthScore     int      `json:"lengthScore" bson:"lengthScore"`   // 0-70
	KeywordScore    int      `json:"keywordScore" bson:"keywordScore"` // 0-30
	TotalScore      int      `json:"totalScore" bson:"totalScore"`     // 0-100
	Grade           Grade    `json:"grade" bson:"grade"`
	MatchedKeywords []string `json:"matchedKeywords" bson:"matchedKeywords"`
}

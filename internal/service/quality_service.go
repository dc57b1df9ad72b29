package service

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// Default length configuration applied when a question supplies none.
const (
	defaultMinCharacters         = 50
	defaultRecommendedCharacters = 150
)

const (
	maxKeywordScore      = 30
	fallbackKeywordCap   = 15
	expectedKeywordsCap  = 3
	maxExtractedKeywords = 20
)

// QualityService grades a single free-text answer against per-question
// length and keyword configuration. Stateless; pure functions only.
type QualityService struct{}

// NewQualityService creates a new quality service.
func NewQualityService() *QualityService {
	return &QualityService{}
}

// ScoreAnswer produces the 0-100 quality breakdown for one answer.
// Lengths are counted in runes of the trimmed text. Grade thresholds
// are strict: exactly 90 grades excellent, not outstanding.
func (s *QualityService) ScoreAnswer(answer string, cfg model.QuestionConfig) model.AnswerQualityResult {
	trimmed := strings.TrimSpace(answer)
	length := utf8.RuneCountInString(trimmed)

	minChars := cfg.MinCharacters
	if minChars <= 0 {
		minChars = defaultMinCharacters
	}
	recommended := cfg.RecommendedCharacters
	if recommended <= 0 {
		recommended = defaultRecommendedCharacters
	}

	lengthScore := lengthScoreFor(length, minChars, recommended)
	keywordScore, matched := keywordScoreFor(trimmed, length, cfg.Keywords)

	total := lengthScore + keywordScore
	if total > 100 {
		total = 100
	}

	return model.AnswerQualityResult{
		LengthScore:     lengthScore,
		KeywordScore:    keywordScore,
		TotalScore:      total,
		Grade:           gradeFor(total),
		MatchedKeywords: matched,
	}
}

// lengthScoreFor maps rune length onto 0-70: a ramp to 30 below the
// minimum, 30-60 between minimum and recommended, and a bonus capped
// at 70 once the answer reaches twice the recommended length.
func lengthScoreFor(length, minChars, recommended int) int {
	if length == 0 {
		return 0
	}
	if length < minChars {
		return roundInt(float64(length) / float64(minChars) * 30)
	}
	if length < recommended {
		return roundInt(30 + float64(length-minChars)/float64(recommended-minChars)*30)
	}
	extra := float64(length-recommended) / float64(recommended)
	if extra > 1 {
		extra = 1
	}
	return roundInt(60 + extra*10)
}

// keywordScoreFor matches configured keywords case-insensitively as
// substrings. Without keywords it falls back to a length-only proxy
// capped at half the keyword budget.
func keywordScoreFor(trimmed string, length int, keywords []string) (int, []string) {
	if len(keywords) == 0 {
		proxy := roundInt(float64(length) / 50 * float64(fallbackKeywordCap))
		if proxy > fallbackKeywordCap {
			proxy = fallbackKeywordCap
		}
		return proxy, nil
	}

	lower := strings.ToLower(trimmed)
	var matched []string
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}

	expected := len(keywords)
	if expected > expectedKeywordsCap {
		expected = expectedKeywordsCap
	}
	ratio := float64(len(matched)) / float64(expected)
	if ratio > 1 {
		ratio = 1
	}
	return roundInt(ratio * maxKeywordScore), matched
}

func gradeFor(total int) model.Grade {
	switch {
	case total > 90:
		return model.GradeOutstanding
	case total > 70:
		return model.GradeExcellent
	case total > 50:
		return model.GradeGood
	default:
		return model.GradeBasic
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// Stop words dropped by keyword extraction. The answer corpus is
// Korean with English mixed in, so both sets are fixed here.
var stopWords = map[string]struct{}{
	// Korean fillers, particles, and common verb forms
	"그리고": {}, "그러나": {}, "하지만": {}, "그래서": {}, "또한": {},
	"때문에": {}, "있습니다": {}, "합니다": {}, "했습니다": {}, "됩니다": {},
	"것입니다": {}, "생각합니다": {}, "그런데": {}, "그리하여": {}, "대해서": {},
	"위해서": {}, "통해서": {}, "경우에는": {}, "부분에서": {}, "관련된": {},
	// English function words longer than the length filter
	"the": {}, "and": {}, "that": {}, "this": {}, "with": {}, "from": {},
	"have": {}, "been": {}, "were": {}, "they": {}, "their": {}, "there": {},
	"what": {}, "when": {}, "which": {}, "while": {}, "would": {}, "could": {},
	"should": {}, "about": {}, "because": {}, "through": {}, "very": {},
	"also": {}, "more": {}, "most": {}, "some": {}, "such": {}, "than": {},
	"then": {}, "them": {}, "over": {}, "into": {}, "other": {}, "only": {},
	"just": {}, "like": {}, "really": {},
}

// ExtractKeywords derives candidate keywords from arbitrary text by
// stop-word and minimum-length filtering: a bootstrap for keyword
// config, not part of the scoring contract.
func (s *QualityService) ExtractKeywords(text string) []string {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(tokens))
	var out []string
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 3 {
			continue
		}
		folded := strings.ToLower(tok)
		if _, stop := stopWords[folded]; stop {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, tok)
		if len(out) == maxExtractedKeywords {
			break
		}
	}
	return out
}

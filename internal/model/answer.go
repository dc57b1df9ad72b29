package model

import "time"

// QuestionMetadata is reference data for one Likert statement, supplied
// by the question bank. The reverse-scoring flag lives here, not on the
// submitted answer.
type QuestionMetadata struct {
	ID              string   `json:"id" bson:"_id,omitempty"`
	QuestionNumber  int      `json:"questionNumber" bson:"questionNumber"`
	Category        Category `json:"category" bson:"category"`
	Text            string   `json:"text" bson:"text"`
	IsReverseScored bool     `json:"isReverseScored" bson:"isReverseScored"`
	Version         string   `json:"version" bson:"version"`
	Active          bool     `json:"active" bson:"active"`
}

// SurveyAnswer is one submitted 1-7 Likert response. Immutable once
// submitted; exactly 60 exist per analysis run.
type SurveyAnswer struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	SessionID      string    `json:"sessionId" bson:"sessionId"`
	QuestionID     string    `json:"questionId" bson:"questionId"`
	QuestionNumber int       `json:"questionNumber" bson:"questionNumber"`
	Category       Category  `json:"category" bson:"category"`
	Score          int       `json:"score" bson:"score"` // 1-7
	AnsweredAt     time.Time `json:"answeredAt" bson:"answeredAt"`
}

// LikertMin and LikertMax bound a valid raw response.
const (
	LikertMin = 1
	LikertMax = 7
)

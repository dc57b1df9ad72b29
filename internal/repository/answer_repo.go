package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// AnswerRepo handles MongoDB operations for submitted survey answers.
type AnswerRepo interface {
	Create(ctx context.Context, answer *model.SurveyAnswer) error
	CreateMany(ctx context.Context, answers []model.SurveyAnswer) error
	GetBySessionID(ctx context.Context, sessionID string) ([]model.SurveyAnswer, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository.
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("survey_answers"),
	}
}

func (r *answerRepo) Create(ctx context.Context, answer *model.SurveyAnswer) error {
	if answer.AnsweredAt.IsZero() {
		answer.AnsweredAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, answer)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		answer.ID = oid.Hex()
	}
	return nil
}

func (r *answerRepo) CreateMany(ctx context.Context, answers []model.SurveyAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(answers))
	now := time.Now()
	for i := range answers {
		if answers[i].AnsweredAt.IsZero() {
			answers[i].AnsweredAt = now
		}
		docs = append(docs, answers[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *answerRepo) GetBySessionID(ctx context.Context, sessionID string) ([]model.SurveyAnswer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []model.SurveyAnswer
	if err = cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"sessionId": sessionID})
	return err
}

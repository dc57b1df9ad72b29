package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// QuestionRepo is the question metadata source: it supplies the active,
// version-tagged Likert bank that scoring runs against. Count
// validation is the scoring layer's job; the repo returns what exists.
type QuestionRepo interface {
	GetActive(ctx context.Context) ([]model.QuestionMetadata, error)
	GetByVersion(ctx context.Context, version string) ([]model.QuestionMetadata, error)
	ReplaceActive(ctx context.Context, version string, questions []model.QuestionMetadata) error
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question metadata repository.
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("survey_questions"),
	}
}

func (r *questionRepo) GetActive(ctx context.Context) ([]model.QuestionMetadata, error) {
	return r.find(ctx, bson.M{"active": true})
}

func (r *questionRepo) GetByVersion(ctx context.Context, version string) ([]model.QuestionMetadata, error) {
	return r.find(ctx, bson.M{"version": version})
}

// ReplaceActive deactivates the current bank and inserts the new
// version as active, so GetActive always sees exactly one bank.
func (r *questionRepo) ReplaceActive(ctx context.Context, version string, questions []model.QuestionMetadata) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"active": true}, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(questions))
	for i := range questions {
		questions[i].Version = version
		questions[i].Active = true
		docs = append(docs, questions[i])
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}

func (r *questionRepo) find(ctx context.Context, filter bson.M) ([]model.QuestionMetadata, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.QuestionMetadata
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

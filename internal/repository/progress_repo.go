package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// ProgressRepo persists report pipeline progress snapshots, one per
// session, as opaque structured payloads.
type ProgressRepo interface {
	Save(ctx context.Context, progress *model.GenerationProgress) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.GenerationProgress, error)
}

type progressRepo struct {
	collection *mongo.Collection
}

// NewProgressRepo creates a new progress repository.
func NewProgressRepo(db *mongo.Database) ProgressRepo {
	return &progressRepo{
		collection: db.Collection("generation_progress"),
	}
}

func (r *progressRepo) Save(ctx context.Context, progress *model.GenerationProgress) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"sessionId": progress.SessionID}, progress, opts)
	return err
}

func (r *progressRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.GenerationProgress, error) {
	var progress model.GenerationProgress
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&progress)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

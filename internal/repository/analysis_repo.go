package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// AnalysisRepo handles MongoDB operations for assembled analyses.
// One analysis per session, replaced wholesale on recompute.
type AnalysisRepo interface {
	Save(ctx context.Context, analysis *model.BriefAnalysis) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.BriefAnalysis, error)
}

type analysisRepo struct {
	collection *mongo.Collection
}

// NewAnalysisRepo creates a new analysis repository.
func NewAnalysisRepo(db *mongo.Database) AnalysisRepo {
	return &analysisRepo{
		collection: db.Collection("brief_analyses"),
	}
}

func (r *analysisRepo) Save(ctx context.Context, analysis *model.BriefAnalysis) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"sessionId": analysis.SessionID}, analysis, opts)
	return err
}

func (r *analysisRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.BriefAnalysis, error) {
	var analysis model.BriefAnalysis
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&analysis)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/cache"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/repository"
)

// AnalysisService runs the full scoring-and-assembly chain for a
// session: answers in, persisted BriefAnalysis out. Each call
// recomputes from scratch; nothing is updated incrementally.
type AnalysisService struct {
	answerRepo    repository.AnswerRepo
	questionRepo  repository.QuestionRepo
	analysisRepo  repository.AnalysisRepo
	analysisCache cache.AnalysisCache
	scores        *ScoreService
	personas      *PersonaService
	content       *ContentService
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(
	answerRepo repository.AnswerRepo,
	questionRepo repository.QuestionRepo,
	analysisRepo repository.AnalysisRepo,
	analysisCache cache.AnalysisCache,
	scores *ScoreService,
	personas *PersonaService,
	content *ContentService,
) *AnalysisService {
	return &AnalysisService{
		answerRepo:    answerRepo,
		questionRepo:  questionRepo,
		analysisRepo:  analysisRepo,
		analysisCache: analysisCache,
		scores:        scores,
		personas:      personas,
		content:       content,
	}
}

// LoadInputs fetches the session's answers and the active question
// bank. Count and range validation happens in ComputeScores, which
// fails closed on anything the bank or the session got wrong.
func (s *AnalysisService) LoadInputs(ctx context.Context, sessionID string) ([]model.SurveyAnswer, []model.QuestionMetadata, error) {
	answers, err := s.answerRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("load answers: %w", err)
	}
	questions, err := s.questionRepo.GetActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load questions: %w", err)
	}
	return answers, questions, nil
}

// Analyze computes and persists a fresh BriefAnalysis for a session.
func (s *AnalysisService) Analyze(ctx context.Context, sessionID string) (*model.BriefAnalysis, error) {
	answers, questions, err := s.LoadInputs(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	brief, err := s.BuildBrief(answers, questions)
	if err != nil {
		return nil, err
	}
	brief.ID = uuid.NewString()
	brief.SessionID = sessionID
	brief.GeneratedAt = time.Now()

	if err := s.SaveAnalysis(ctx, brief); err != nil {
		return nil, err
	}
	return brief, nil
}

// BuildBrief is the pure engine chain: compute, rank, resolve,
// classify, assemble. Identifier fields are left unstamped, so two
// calls with identical inputs produce identical output.
func (s *AnalysisService) BuildBrief(answers []model.SurveyAnswer, questions []model.QuestionMetadata) (*model.BriefAnalysis, error) {
	scores, err := s.scores.ComputeScores(answers, questions)
	if err != nil {
		return nil, err
	}
	ranked, err := s.scores.RankCategories(scores)
	if err != nil {
		return nil, err
	}
	persona, err := s.personas.Resolve(ranked)
	if err != nil {
		return nil, err
	}
	variant, err := s.scores.ClassifyVariant(ranked)
	if err != nil {
		return nil, err
	}
	return s.content.AssembleBrief(persona, variant, ranked)
}

// StampAndSave assigns identity and timestamp to an assembled brief
// and persists it. The pipeline calls this as its final step.
func (s *AnalysisService) StampAndSave(ctx context.Context, sessionID string, brief *model.BriefAnalysis) error {
	if brief == nil {
		return fmt.Errorf("no analysis assembled for session %s", sessionID)
	}
	brief.ID = uuid.NewString()
	brief.SessionID = sessionID
	brief.GeneratedAt = time.Now()
	return s.SaveAnalysis(ctx, brief)
}

// SaveAnalysis writes through to Mongo and refreshes the cache. The
// cache write is best effort; the repository is the source of truth.
func (s *AnalysisService) SaveAnalysis(ctx context.Context, brief *model.BriefAnalysis) error {
	if err := s.analysisRepo.Save(ctx, brief); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	_ = s.analysisCache.Set(ctx, brief)
	return nil
}

// GetBySessionID reads the analysis for a session, cache first.
func (s *AnalysisService) GetBySessionID(ctx context.Context, sessionID string) (*model.BriefAnalysis, error) {
	if cached, err := s.analysisCache.Get(ctx, sessionID); err == nil && cached != nil {
		return cached, nil
	}
	brief, err := s.analysisRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if brief != nil {
		_ = s.analysisCache.Set(ctx, brief)
	}
	return brief, nil
}

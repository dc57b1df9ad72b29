package service

import (
	"context"
	"fmt"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/cache"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/repository"
)

// ReportService orchestrates the 10-step report pipeline for one
// session, driving the progress tracker and persisting its snapshot
// after every transition. The first failing step is terminal for the
// run; retry policy belongs to whoever re-invokes Generate.
//
// One in-flight run per session: the tracker is not safe for
// concurrent writers.
type ReportService struct {
	analysisSvc   *AnalysisService
	scores        *ScoreService
	personas      *PersonaService
	content       *ContentService
	progressRepo  repository.ProgressRepo
	progressCache cache.ProgressCache
	agents        ReportAgents
}

// NewReportService creates a new report pipeline orchestrator.
func NewReportService(
	analysisSvc *AnalysisService,
	scores *ScoreService,
	personas *PersonaService,
	content *ContentService,
	progressRepo repository.ProgressRepo,
	progressCache cache.ProgressCache,
	agents ReportAgents,
) *ReportService {
	return &ReportService{
		analysisSvc:   analysisSvc,
		scores:        scores,
		personas:      personas,
		content:       content,
		progressRepo:  progressRepo,
		progressCache: progressCache,
		agents:        agents,
	}
}

// Generate runs the full pipeline. The returned progress reflects the
// final run state; the error is the first step failure, if any.
func (s *ReportService) Generate(ctx context.Context, sessionID string) (model.GenerationProgress, error) {
	tracker := NewProgressTracker(sessionID)
	if err := s.persist(ctx, tracker); err != nil {
		return tracker.Progress(), err
	}

	var (
		answers   []model.SurveyAnswer
		questions []model.QuestionMetadata
		ranked    []model.CategoryScore
		persona   model.Persona
		variant   model.TemplateVariant
		brief     *model.BriefAnalysis
	)

	steps := []func(context.Context) error{
		func(ctx context.Context) error {
			var err error
			answers, questions, err = s.analysisSvc.LoadInputs(ctx, sessionID)
			if err != nil {
				return err
			}
			if len(answers) != model.TotalQuestions {
				return &ValidationError{Field: "answers", Reason: fmt.Sprintf("session %s has %d answers, want %d", sessionID, len(answers), model.TotalQuestions)}
			}
			return nil
		},
		func(context.Context) error {
			scores, err := s.scores.ComputeScores(answers, questions)
			if err != nil {
				return err
			}
			ranked, err = s.scores.RankCategories(scores)
			return err
		},
		func(context.Context) error {
			var err error
			persona, err = s.personas.Resolve(ranked)
			return err
		},
		func(context.Context) error {
			var err error
			variant, err = s.scores.ClassifyVariant(ranked)
			return err
		},
		func(context.Context) error {
			var err error
			brief, err = s.content.AssembleBrief(persona, variant, ranked)
			return err
		},
		func(ctx context.Context) error {
			return s.agents.ParseResume(ctx, sessionID)
		},
		func(ctx context.Context) error {
			return s.agents.AnalyzePortfolio(ctx, sessionID)
		},
		func(ctx context.Context) error {
			return s.agents.WriteBrandStrategy(ctx, sessionID, brief)
		},
		func(ctx context.Context) error {
			return s.agents.ComposeReport(ctx, sessionID)
		},
		func(ctx context.Context) error {
			return s.analysisSvc.StampAndSave(ctx, sessionID, brief)
		},
	}

	for i, run := range steps {
		n := i + 1
		tracker.StartStep(n)
		if err := s.persist(ctx, tracker); err != nil {
			return tracker.Progress(), err
		}
		if err := run(ctx); err != nil {
			tracker.FailStep(n, err.Error())
			if perr := s.persist(ctx, tracker); perr != nil {
				return tracker.Progress(), perr
			}
			return tracker.Progress(), err
		}
		tracker.CompleteStep(n, "")
		if err := s.persist(ctx, tracker); err != nil {
			return tracker.Progress(), err
		}
	}

	tracker.Complete()
	if err := s.persist(ctx, tracker); err != nil {
		return tracker.Progress(), err
	}
	return tracker.Progress(), nil
}

// Status returns the current pipeline state for polling, cache first
// with a Mongo fallback that backfills the cache. Nil means no run
// exists for the session.
func (s *ReportService) Status(ctx context.Context, sessionID string) (*model.GenerationProgress, error) {
	if cached, err := s.progressCache.Get(ctx, sessionID); err == nil && cached != nil {
		return cached, nil
	}
	progress, err := s.progressRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		_ = s.progressCache.Set(ctx, progress)
	}
	return progress, nil
}

// persist writes the tracker snapshot through to Mongo and refreshes
// the poll cache. The cache write is best effort.
func (s *ReportService) persist(ctx context.Context, tracker *ProgressTracker) error {
	snapshot := tracker.Progress()
	if err := s.progressRepo.Save(ctx, &snapshot); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	_ = s.progressCache.Set(ctx, &snapshot)
	return nil
}

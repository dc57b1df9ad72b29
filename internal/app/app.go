package app

import (
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/cache"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/repository"
	"github.com/Yngie-C/personal-branding-report-sub001/internal/service"
)

// App wires the repositories, caches, and services for an embedding
// process (the seed binary, the owning HTTP layer, tests).
type App struct {
	QuestionRepo repository.QuestionRepo
	AnswerRepo   repository.AnswerRepo
	AnalysisRepo repository.AnalysisRepo
	ProgressRepo repository.ProgressRepo

	AnalysisCache cache.AnalysisCache
	ProgressCache cache.ProgressCache

	ScoreService    *service.ScoreService
	PersonaService  *service.PersonaService
	ContentService  *service.ContentService
	QualityService  *service.QualityService
	AnalysisService *service.AnalysisService
	ReportService   *service.ReportService
}

// New builds the full container. The agents collaborator is injected
// by the caller; pass nil only if the report pipeline will not run.
func New(db *mongo.Database, rdb *redis.Client, agents service.ReportAgents) *App {
	questionRepo := repository.NewQuestionRepo(db)
	answerRepo := repository.NewAnswerRepo(db)
	analysisRepo := repository.NewAnalysisRepo(db)
	progressRepo := repository.NewProgressRepo(db)

	analysisCache := cache.NewAnalysisCache(rdb)
	progressCache := cache.NewProgressCache(rdb)

	scoreSvc := service.NewScoreService()
	personaSvc := service.NewPersonaService()
	contentSvc := service.NewContentService()
	qualitySvc := service.NewQualityService()
	analysisSvc := service.NewAnalysisService(answerRepo, questionRepo, analysisRepo, analysisCache, scoreSvc, personaSvc, contentSvc)
	reportSvc := service.NewReportService(analysisSvc, scoreSvc, personaSvc, contentSvc, progressRepo, progressCache, agents)

	return &App{
		QuestionRepo:    questionRepo,
		AnswerRepo:      answerRepo,
		AnalysisRepo:    analysisRepo,
		ProgressRepo:    progressRepo,
		AnalysisCache:   analysisCache,
		ProgressCache:   progressCache,
		ScoreService:    scoreSvc,
		PersonaService:  personaSvc,
		ContentService:  contentSvc,
		QualityService:  qualitySvc,
		AnalysisService: analysisSvc,
		ReportService:   reportSvc,
	}
}

package service

import (
	"context"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// ReportAgents is the boundary to the LLM-backed generation agents.
// The engine never calls a model itself; the orchestrator advances
// the progress tracker around whatever implementation is injected.
// Errors are human-readable strings suitable for the progress record.
type ReportAgents interface {
	ParseResume(ctx context.Context, sessionID string) error
	AnalyzePortfolio(ctx context.Context, sessionID string) error
	WriteBrandStrategy(ctx context.Context, sessionID string, analysis *model.BriefAnalysis) error
	ComposeReport(ctx context.Context, sessionID string) error
}

package service

import (
	"time"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// TotalPipelineSteps is the fixed length of the report pipeline.
const TotalPipelineSteps = 10

// pipelineStepNames are the fixed, ordered steps of a report run.
var pipelineStepNames = [TotalPipelineSteps]string{
	"Validating survey answers",
	"Computing category scores",
	"Resolving persona",
	"Classifying score profile",
	"Assembling brief analysis",
	"Parsing resume",
	"Analyzing portfolio",
	"Writing brand strategy",
	"Composing report document",
	"Finalizing report",
}

// ProgressTracker owns the step state machine for one report run. The
// orchestrator drives it with one call per transition; steps are
// trusted to be advanced in order and are never validated against the
// previous state. Not safe for concurrent writers: callers serialize
// pipeline execution per session.
type ProgressTracker struct {
	state *model.GenerationProgress
	now   func() time.Time
}

// NewProgressTracker creates a tracker for one session with all steps
// pending and overall status started.
func NewProgressTracker(sessionID string) *ProgressTracker {
	return newProgressTracker(sessionID, time.Now)
}

func newProgressTracker(sessionID string, now func() time.Time) *ProgressTracker {
	steps := make([]model.ProgressStep, TotalPipelineSteps)
	for i, name := range pipelineStepNames {
		steps[i] = model.ProgressStep{
			Step:   i + 1,
			Name:   name,
			Status: model.StepPending,
		}
	}
	return &ProgressTracker{
		state: &model.GenerationProgress{
			SessionID:     sessionID,
			CurrentStep:   0,
			TotalSteps:    TotalPipelineSteps,
			Steps:         steps,
			OverallStatus: model.RunStarted,
			StartedAt:     now(),
		},
		now: now,
	}
}

// StartStep marks step n in progress and the run processing.
func (t *ProgressTracker) StartStep(n int) {
	t.setStep(n, model.StepInProgress, "")
	t.state.CurrentStep = n
	t.state.OverallStatus = model.RunProcessing
}

// CompleteStep marks step n completed. The run stays processing even
// after the last step; finishing the whole run is Complete's job.
func (t *ProgressTracker) CompleteStep(n int, message string) {
	t.setStep(n, model.StepCompleted, message)
	t.state.OverallStatus = model.RunProcessing
}

// FailStep marks step n failed and the run terminally failed,
// recording the error string verbatim for the user-facing layer.
func (t *ProgressTracker) FailStep(n int, errMsg string) {
	t.setStep(n, model.StepFailed, errMsg)
	t.state.OverallStatus = model.RunFailed
	t.state.Error = errMsg
	done := t.now()
	t.state.CompletedAt = &done
}

// Complete marks the whole run finished.
func (t *ProgressTracker) Complete() {
	t.state.CurrentStep = TotalPipelineSteps
	t.state.OverallStatus = model.RunCompleted
	done := t.now()
	t.state.CompletedAt = &done
}

// Progress returns a copy of the current state for persistence or
// polling, so callers cannot mutate the tracker's internal steps.
func (t *ProgressTracker) Progress() model.GenerationProgress {
	snapshot := *t.state
	snapshot.Steps = make([]model.ProgressStep, len(t.state.Steps))
	copy(snapshot.Steps, t.state.Steps)
	return snapshot
}

func (t *ProgressTracker) setStep(n int, status model.StepStatus, message string) {
	if n < 1 || n > len(t.state.Steps) {
		return
	}
	ts := t.now()
	step := &t.state.Steps[n-1]
	step.Status = status
	step.Message = message
	step.Timestamp = &ts
}

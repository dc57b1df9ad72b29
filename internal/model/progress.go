package model

import "time"

// StepStatus is the lifecycle state of one pipeline step.
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
	StepFailed     StepStatus = "failed"
)

// RunStatus is the overall state of a report-generation run.
type RunStatus string

const (
	RunStarted    RunStatus = "started"
	RunProcessing RunStatus = "processing"
	RunCompleted  RunStatus = "completed"
	RunFailed     RunStatus = "failed"
)

// ProgressStep is one named pipeline step. Step ordinals are fixed 1-10.
type ProgressStep struct {
	Step      int        `json:"step" bson:"step"`
	Name      string     `json:"name" bson:"name"`
	Status    StepStatus `json:"status" bson:"status"`
	Message   string     `json:"message,omitempty" bson:"message,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
}

// GenerationProgress is the polled state of one report pipeline run.
// One instance per session; not safe for concurrent writers.
type GenerationProgress struct {
	SessionID     string         `json:"sessionId" bson:"sessionId"`
	CurrentStep   int            `json:"currentStep" bson:"currentStep"`
	TotalSteps    int            `json:"totalSteps" bson:"totalSteps"`
	Steps         []ProgressStep `json:"steps" bson:"steps"`
	OverallStatus RunStatus      `json:"overallStatus" bson:"overallStatus"`
	StartedAt     time.Time      `json:"startedAt" bson:"startedAt"`
	CompletedAt   *time.Time     `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	Error         string         `json:"error,omitempty" bson:"error,omitempty"`
}

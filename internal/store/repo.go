package store

import (
	"context"
	"time"

	"github.com/abhisek/typeprint/internal/scoring"
)

// AssessmentEventData captures one assessment lifecycle event.
type AssessmentEventData struct {
	SessionID    string
	Action       string // "start", "complete", or "abandon"
	Respondent   string
	TypeCode     string
	Answered     int
	Omitted      int
	DurationSecs int
}

// ResponseEventData captures one questionnaire response event.
type ResponseEventData struct {
	SessionID string
	ItemID    int
	Dichotomy string
	Action    string // "answer" or "skip"
	ChoiceKey string // empty on skip
	TimeMs    int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to the assessment event log.
type EventRepo interface {
	// AppendAssessment records an assessment lifecycle event.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendResponse records a single response event.
	AppendResponse(ctx context.Context, data ResponseEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ResponseCount returns the number of response events in a session.
	ResponseCount(ctx context.Context, sessionID string) (int, error)
}

// ResultRecord is a persisted scored assessment.
type ResultRecord struct {
	ID           int
	SessionID    string
	Respondent   string
	Result       *scoring.Result
	Answered     int
	Omitted      int
	DurationSecs int
	FinishedAt   time.Time
}

// ResultRepo manages persisted assessment results.
type ResultRepo interface {
	// Save stores a completed result.
	Save(ctx context.Context, rec *ResultRecord) error

	// Latest returns the most recent result, or nil if none exist.
	Latest(ctx context.Context) (*ResultRecord, error)

	// History returns results newest first, at most limit (0 = all).
	History(ctx context.Context, limit int) ([]*ResultRecord, error)

	// Prune deletes all but the N most recent results.
	Prune(ctx context.Context, keep int) error
}

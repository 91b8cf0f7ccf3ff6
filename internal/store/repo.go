package store

import (
	"context"
	"time"

	"github.com/abhinav-rk/studyloop/internal/activity"
	"github.com/abhinav-rk/studyloop/internal/llm"
	"github.com/abhinav-rk/studyloop/internal/roadmap"
	"github.com/abhinav-rk/studyloop/internal/swot"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Purpose string // LLM events only: filter by purpose label
}

// LLMRequestEventRecord is a persisted LLM request event read back out.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	llm.RequestLog
}

// EventRepo provides append and query access to the event log.
// It satisfies roadmap.EventSource so the watcher can consume it directly.
type EventRepo interface {
	// Append writes one activity event. A missing EventID is assigned;
	// a zero Timestamp defaults to now.
	Append(ctx context.Context, e activity.Event) error

	// Events returns all activity events. No ordering guarantee;
	// callers sort by timestamp.
	Events(ctx context.Context) ([]activity.Event, error)

	// AppendLLMRequest records an LLM API call event. Satisfies
	// llm.Recorder so the logging decorator can write through here.
	AppendLLMRequest(ctx context.Context, data llm.RequestLog) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM request event by row id, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// LLMUsageStats is aggregated usage for a single purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage is aggregated usage for a single model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ProfileData is the learner's persisted document.
type ProfileData struct {
	Roadmap       *roadmap.Roadmap `json:"roadmap,omitempty"`
	ActionHistory []string         `json:"action_history,omitempty"`
	Swot          *swot.Document   `json:"swot,omitempty"`
	SwotUpdatedAt *time.Time       `json:"swot_updated_at,omitempty"`
}

// ProfileRepo manages the learner profile document. It satisfies
// roadmap.Store for the watcher.
type ProfileRepo interface {
	// Load returns the newest profile, or an empty profile if none exists.
	Load(ctx context.Context) (*ProfileData, error)

	// Save persists a new profile version.
	Save(ctx context.Context, p *ProfileData) error

	// Roadmap returns the active roadmap, or nil when none was generated.
	Roadmap(ctx context.Context) (*roadmap.Roadmap, error)

	// SaveRoadmap replaces the roadmap, keeping the rest of the profile.
	SaveRoadmap(ctx context.Context, r *roadmap.Roadmap) error

	// ActionHistory returns the rolling shown-action id history.
	ActionHistory(ctx context.Context) ([]string, error)

	// SaveActionHistory replaces the action history.
	SaveActionHistory(ctx context.Context, ids []string) error

	// Prune deletes all but the N most recent profile versions.
	Prune(ctx context.Context, keep int) error
}

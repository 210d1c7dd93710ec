package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // LLM events only: filter by purpose label
	Teacher string    // plan events only: filter by teacher ID
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
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PlanEventData captures the outcome of one lesson-plan generation run.
type PlanEventData struct {
	TeacherID       string
	SessionID       string
	Grade           int
	Subject         string
	Topic           string
	DurationMinutes int
	ReviewStatus    string
	ReviewScore     float64
	Success         bool
	ElapsedMs       int64
	PlanJSON        string
}

// PlanEventRecord is a stored plan generation event.
type PlanEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	PlanEventData
}

// UsageSummary aggregates token usage for one purpose label.
type UsageSummary struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns stored LLM events, newest first.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMRequest returns one stored LLM event by ID.
	GetLLMRequest(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// UsageByPurpose aggregates token usage grouped by purpose label.
	UsageByPurpose(ctx context.Context) ([]UsageSummary, error)

	// UsageByModel aggregates token usage grouped by model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendPlanEvent records the outcome of a lesson-plan generation run.
	AppendPlanEvent(ctx context.Context, data PlanEventData) error

	// QueryPlanEvents returns stored plan events, newest first.
	QueryPlanEvents(ctx context.Context, opts QueryOpts) ([]PlanEventRecord, error)
}

// Snapshot is a point-in-time capture of persisted application state,
// currently the teacher memory bank export.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo manages state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, data []byte) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

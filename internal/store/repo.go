package store

import (
	"context"
	"time"

	"github.com/kavery/platewise/internal/journey"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// JourneyRepo persists journey state, one row per user.
//
// The core treats Load/Save as atomic reads and writes; retry and offline
// policy live here (currently: none), never in the progression engine.
type JourneyRepo interface {
	// Load returns the user's journey state, or nil if none exists yet.
	Load(ctx context.Context, userID string) (*journey.State, error)

	// Save upserts the user's journey state.
	Save(ctx context.Context, userID string, state journey.State) error

	// Delete removes the user's journey state. Missing rows are not an error.
	Delete(ctx context.Context, userID string) error
}

// CompletionEventData captures one lesson completion for the event log.
type CompletionEventData struct {
	UserID   string
	LessonID string
	Level    string
}

// PlateCheckEventData captures one plate-photo analysis.
type PlateCheckEventData struct {
	CheckID      string
	UserID       string
	HasProtein   bool
	HasPlants    bool
	ReactionType string
	ReactionID   string
	Suggestion   string
}

// PlateCheckRecord is a stored plate check event.
type PlateCheckRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	PlateCheckEventData
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

// LLMRequestRecord is a stored LLM request event.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates LLM token usage for one purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates LLM token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendCompletion records a lesson completion event.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// AppendPlateCheck records a plate check event.
	AppendPlateCheck(ctx context.Context, data PlateCheckEventData) error

	// QueryPlateChecks returns plate check events, newest first.
	QueryPlateChecks(ctx context.Context, opts QueryOpts) ([]PlateCheckRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMEvent returns one LLM request event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

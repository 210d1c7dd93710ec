package trace

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Kind distinguishes the traced call types.
type Kind string

const (
	KindAgent Kind = "agent"
	KindTool  Kind = "tool"
)

// Entry is one recorded step of an orchestration run.
type Entry struct {
	Time   time.Time      `json:"time"`
	Kind   Kind           `json:"kind"`
	Agent  string         `json:"agent"`
	Action string         `json:"action"`
	Fields map[string]any `json:"fields,omitempty"`
}

// Tracer records the steps of a single orchestration request. Each
// request gets its own tracer; there is no shared global state.
type Tracer struct {
	requestID string
	log       zerolog.Logger

	mu      sync.Mutex
	entries []Entry
}

// New creates a tracer for one request, stamping every log line with
// the generated request id.
func New(log zerolog.Logger) *Tracer {
	id := uuid.NewString()
	return &Tracer{
		requestID: id,
		log:       log.With().Str("request_id", id).Logger(),
	}
}

// RequestID returns the id assigned to this request.
func (t *Tracer) RequestID() string {
	return t.requestID
}

// AgentCall records a step performed by one of the generation agents.
func (t *Tracer) AgentCall(agent, action string, fields map[string]any) {
	t.record(KindAgent, agent, action, fields)
}

// ToolCall records a non-LLM collaborator call (lookup, store, export).
func (t *Tracer) ToolCall(agent, tool string, fields map[string]any) {
	t.record(KindTool, agent, tool, fields)
}

func (t *Tracer) record(kind Kind, agent, action string, fields map[string]any) {
	entry := Entry{
		Time:   time.Now(),
		Kind:   kind,
		Agent:  agent,
		Action: action,
		Fields: fields,
	}

	t.mu.Lock()
	t.entries = append(t.entries, entry)
	t.mu.Unlock()

	ev := t.log.Debug().Str("kind", string(kind)).Str("agent", agent).Str("action", action)
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg("trace")
}

// Entries returns a copy of the recorded steps in order.
func (t *Tracer) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// WriteFile dumps the trace as JSON for offline inspection.
func (t *Tracer) WriteFile(path string) error {
	t.mu.Lock()
	data, err := json.MarshalIndent(struct {
		RequestID string  `json:"request_id"`
		Entries   []Entry `json:"entries"`
	}{t.requestID, t.entries}, "", "  ")
	t.mu.Unlock()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

package trace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestTracer_RecordsEntriesInOrder(t *testing.T) {
	tr := New(zerolog.Nop())

	tr.AgentCall("content", "objectives", map[string]any{"grade": 5})
	tr.ToolCall("standards", "lookup", nil)

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %v", entries)
	}
	if entries[0].Kind != KindAgent || entries[0].Action != "objectives" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].Kind != KindTool || entries[1].Agent != "standards" {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestTracer_UniqueRequestIDs(t *testing.T) {
	a := New(zerolog.Nop())
	b := New(zerolog.Nop())
	if a.RequestID() == "" || a.RequestID() == b.RequestID() {
		t.Errorf("request ids not unique: %q %q", a.RequestID(), b.RequestID())
	}
}

func TestTracer_WriteFile(t *testing.T) {
	tr := New(zerolog.Nop())
	tr.AgentCall("review", "qa-review", nil)

	path := filepath.Join(t.TempDir(), "trace.json")
	if err := tr.WriteFile(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		RequestID string  `json:"request_id"`
		Entries   []Entry `json:"entries"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.RequestID != tr.RequestID() || len(out.Entries) != 1 {
		t.Errorf("dump = %+v", out)
	}
}

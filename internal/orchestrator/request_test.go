package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/pedagogue-ai/pedagogue/internal/llm"
	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

func jsonResponse(body string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(body)}
}

func TestHandleTeacherRequest_FullFlow(t *testing.T) {
	responses := append(
		[]llm.MockResponse{jsonResponse(`{"grade":5,"subject":"Математика","topic":"Дроби","duration":40}`)},
		pipelineResponses()...)
	env := newTestEnv(t, true, responses...)

	p, err := env.orch.HandleTeacherRequest(context.Background(),
		"Потрібен урок математики про дроби для 5 класу на 40 хвилин", "t-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Metadata.Grade != 5 || p.Metadata.Subject != "Математика" || p.Metadata.DurationMinutes != 40 {
		t.Errorf("metadata = %+v", p.Metadata)
	}

	// The extraction call runs cold with the structured schema.
	call := env.mock.Calls[0]
	if call.Temperature != 0.2 {
		t.Errorf("extraction temperature = %v, want 0.2", call.Temperature)
	}
	if call.Schema == nil || call.Schema.Name != "lesson-request" {
		t.Errorf("extraction schema = %+v", call.Schema)
	}
}

func TestHandleTeacherRequest_ArrayResponseTolerated(t *testing.T) {
	responses := append(
		[]llm.MockResponse{jsonResponse(`[{"grade":5,"subject":"Математика","topic":"Дроби"}]`)},
		pipelineResponses()...)
	env := newTestEnv(t, true, responses...)

	p, err := env.orch.HandleTeacherRequest(context.Background(), "урок про дроби, 5 клас, математика", "t-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Metadata.Topic != "Дроби" {
		t.Errorf("topic = %q", p.Metadata.Topic)
	}
}

func TestHandleTeacherRequest_DefaultDuration(t *testing.T) {
	responses := append(
		[]llm.MockResponse{jsonResponse(`{"grade":5,"subject":"Математика","topic":"Дроби","duration":0}`)},
		pipelineResponses()...)
	env := newTestEnv(t, true, responses...)

	p, err := env.orch.HandleTeacherRequest(context.Background(), "урок про дроби", "t-1", "")
	if err != nil {
		t.Fatal(err)
	}
	if p.Metadata.DurationMinutes != plan.DefaultDurationMinutes {
		t.Errorf("duration = %d, want %d", p.Metadata.DurationMinutes, plan.DefaultDurationMinutes)
	}
}

func TestHandleTeacherRequest_Clarification(t *testing.T) {
	env := newTestEnv(t, true, jsonResponse(`{"grade":0,"subject":"","topic":"Дроби"}`))

	_, err := env.orch.HandleTeacherRequest(context.Background(), "хочу урок про дроби", "t-1", "")
	var cerr *ClarificationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ClarificationError, got %v", err)
	}
	if len(cerr.MissingFields) != 2 {
		t.Errorf("missing = %v", cerr.MissingFields)
	}
	q := cerr.Question()
	if q == "" {
		t.Error("expected a phrased clarification question")
	}

	// Only the extraction call may have run.
	if env.mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", env.mock.CallCount())
	}
}

func TestHandleTeacherRequest_ExtractionErrorPropagates(t *testing.T) {
	env := newTestEnv(t, true, llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	_, err := env.orch.HandleTeacherRequest(context.Background(), "урок", "t-1", "")
	if err == nil {
		t.Fatal("expected error when extraction itself fails")
	}
	var cerr *ClarificationError
	if errors.As(err, &cerr) {
		t.Error("provider failure is not a clarification")
	}
}

func TestNormalizeExtraction(t *testing.T) {
	obj := json.RawMessage(`{"a":1}`)
	if got := normalizeExtraction(obj); string(got) != `{"a":1}` {
		t.Errorf("object changed: %s", got)
	}
	arr := json.RawMessage(` [{"a":1},{"a":2}]`)
	if got := normalizeExtraction(arr); string(got) != `{"a":1}` {
		t.Errorf("array not unwrapped: %s", got)
	}
	empty := json.RawMessage(`[]`)
	if got := normalizeExtraction(empty); string(got) != `[]` {
		t.Errorf("empty array mishandled: %s", got)
	}
}

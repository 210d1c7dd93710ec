package pedagogy

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pedagogue-ai/pedagogue/internal/llm"
)

func textResponse(text string) llm.MockResponse {
	raw, _ := json.Marshal(text)
	return llm.MockResponse{Content: json.RawMessage(raw)}
}

func TestSuggestStrategies_ExtractsSignals(t *testing.T) {
	mock := llm.NewMockProvider(textResponse(
		"Цільовий рівень: застосування. Рекомендую Jigsaw та проблемне навчання."))
	a := NewAdvisor(mock, DefaultConfig())

	res := a.SuggestStrategies(context.Background(), 6, "Біологія", "Клітина", 45)
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.Err)
	}
	if res.BloomLevel != "застосування" {
		t.Errorf("bloom = %q", res.BloomLevel)
	}
	want := []string{"Jigsaw", "проблемне навчання"}
	if len(res.EngagementMethods) != 2 || res.EngagementMethods[0] != want[0] || res.EngagementMethods[1] != want[1] {
		t.Errorf("methods = %v, want %v", res.EngagementMethods, want)
	}
	if mock.Calls[0].Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", mock.Calls[0].Temperature)
	}
}

func TestSuggestStrategies_FailureAbsorbed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	a := NewAdvisor(mock, DefaultConfig())

	res := a.SuggestStrategies(context.Background(), 6, "Біологія", "Клітина", 45)
	if res.Success {
		t.Fatal("expected failure envelope")
	}
	if res.BloomLevel != "" {
		t.Errorf("failed result should not carry a bloom level, got %q", res.BloomLevel)
	}
}

func TestDesignAssessment_IncludesBloomLevel(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("Тест із 10 завдань."))
	a := NewAdvisor(mock, DefaultConfig())

	res := a.DesignAssessment(context.Background(), 6, "Клітина", "аналіз")
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.Err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "аналіз") {
		t.Error("prompt missing bloom level")
	}
}

func TestCreateDifferentiationTiers_UsesBaseActivity(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("Три рівні."))
	a := NewAdvisor(mock, DefaultConfig())

	res := a.CreateDifferentiationTiers(context.Background(), "Розв'язати 5 прикладів на дроби.", 5)
	if !res.Success {
		t.Fatalf("unexpected failure: %s", res.Err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Розв'язати 5 прикладів на дроби.") {
		t.Error("prompt missing base activity text")
	}
}

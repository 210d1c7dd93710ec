package content

import (
	"context"
	"encoding/json"

	"github.com/pedagogue-ai/pedagogue/internal/llm"
	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

// Generator produces the textual components of a lesson plan.
// Every method issues exactly one provider call and absorbs failures
// into the result envelope; callers never receive an error.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a content generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Objectives generates 3-5 SMART learning objectives.
func (g *Generator) Objectives(ctx context.Context, grade int, subject, topic string, outcomes []string) plan.TextResult {
	text, err := g.generate(ctx, "objectives", objectivesTemperature,
		buildObjectivesMessage(grade, subject, topic, outcomes))
	if err != nil {
		return plan.TextResult{Status: plan.Fail(err)}
	}
	return plan.TextResult{Status: plan.OK(), Text: text}
}

// Warmup generates a short opening activity.
func (g *Generator) Warmup(ctx context.Context, grade int, topic string, minutes int) plan.TextResult {
	text, err := g.generate(ctx, "warmup", warmupTemperature,
		buildWarmupMessage(grade, topic, minutes))
	if err != nil {
		return plan.TextResult{Status: plan.Fail(err)}
	}
	return plan.TextResult{Status: plan.OK(), Text: text}
}

// DirectInstruction generates the teacher-led explanation segment.
func (g *Generator) DirectInstruction(ctx context.Context, grade int, topic string, keyConcepts []string, minutes int) plan.TextResult {
	text, err := g.generate(ctx, "instruction", instructionTemperature,
		buildInstructionMessage(grade, topic, keyConcepts, minutes))
	if err != nil {
		return plan.TextResult{Status: plan.Fail(err)}
	}
	return plan.TextResult{Status: plan.OK(), Text: text}
}

// PracticeActivity generates a guided or independent practice activity.
func (g *Generator) PracticeActivity(ctx context.Context, grade int, topic string, kind plan.PracticeKind) plan.ActivityResult {
	purpose := "guided-practice"
	if kind == plan.PracticeIndependent {
		purpose = "independent-practice"
	}
	text, err := g.generate(ctx, purpose, practiceTemperature,
		buildPracticeMessage(grade, topic, kind))
	if err != nil {
		return plan.ActivityResult{Status: plan.Fail(err), Kind: kind}
	}
	return plan.ActivityResult{Status: plan.OK(), Activity: text, Kind: kind}
}

// AssessmentItems generates a numbered set of assessment tasks.
func (g *Generator) AssessmentItems(ctx context.Context, grade int, topic string, kind plan.AssessmentKind, count int) plan.AssessmentItemsResult {
	purpose := "formative-assessment"
	if kind == plan.AssessmentSummative {
		purpose = "summative-assessment"
	}
	text, err := g.generate(ctx, purpose, assessmentTemperature,
		buildAssessmentMessage(grade, topic, kind, count))
	if err != nil {
		return plan.AssessmentItemsResult{Status: plan.Fail(err), Kind: kind, Count: count}
	}
	return plan.AssessmentItemsResult{Status: plan.OK(), Items: text, Kind: kind, Count: count}
}

// generate issues one raw-text provider call with the shared system role.
func (g *Generator) generate(ctx context.Context, purpose string, temperature float64, userMsg string) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System: teacherSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return decodeText(resp.Content), nil
}

// decodeText unwraps a raw-text response. Providers wrap plain text as
// a JSON string; structured content is passed through unchanged.
func decodeText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return s
	}
	return string(content)
}

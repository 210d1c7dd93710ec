package pedagogy

import (
	"context"
	"encoding/json"

	"github.com/pedagogue-ai/pedagogue/internal/llm"
	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

// Advisor recommends teaching strategies and assessment designs based
// on learning science. Like the content generator, it absorbs provider
// failures into result envelopes.
type Advisor struct {
	provider llm.Provider
	cfg      Config
}

// Config controls generation limits for the advisor.
type Config struct {
	MaxTokens int
}

// DefaultConfig returns the standard advisor configuration.
func DefaultConfig() Config {
	return Config{MaxTokens: 1500}
}

const advisorTemperature = 0.7

// NewAdvisor creates a strategy advisor.
func NewAdvisor(provider llm.Provider, cfg Config) *Advisor {
	return &Advisor{provider: provider, cfg: cfg}
}

// SuggestStrategies recommends teaching strategies for the lesson and
// extracts the Bloom's taxonomy level and engagement methods from the
// generated text.
func (a *Advisor) SuggestStrategies(ctx context.Context, grade int, subject, topic string, durationMinutes int) plan.StrategiesResult {
	text, err := a.generate(ctx, "strategies", buildStrategiesMessage(grade, subject, topic, durationMinutes))
	if err != nil {
		return plan.StrategiesResult{Status: plan.Fail(err)}
	}
	return plan.StrategiesResult{
		Status:            plan.OK(),
		Strategies:        text,
		BloomLevel:        ExtractBloomLevel(text),
		EngagementMethods: ExtractEngagementMethods(text),
	}
}

// DesignAssessment produces an assessment design aligned to the target
// Bloom level.
func (a *Advisor) DesignAssessment(ctx context.Context, grade int, topic, bloomLevel string) plan.AssessmentDesignResult {
	text, err := a.generate(ctx, "assessment-design", buildAssessmentDesignMessage(grade, topic, bloomLevel))
	if err != nil {
		return plan.AssessmentDesignResult{Status: plan.Fail(err)}
	}
	return plan.AssessmentDesignResult{Status: plan.OK(), Design: text}
}

// CreateDifferentiationTiers rewrites a base activity into three
// difficulty tiers.
func (a *Advisor) CreateDifferentiationTiers(ctx context.Context, baseActivity string, grade int) plan.TiersResult {
	text, err := a.generate(ctx, "differentiation", buildTiersMessage(baseActivity, grade))
	if err != nil {
		return plan.TiersResult{Status: plan.Fail(err)}
	}
	return plan.TiersResult{Status: plan.OK(), Tiers: text}
}

func (a *Advisor) generate(ctx context.Context, purpose, userMsg string) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System: advisorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: advisorTemperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return decodeText(resp.Content), nil
}

func decodeText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return s
	}
	return string(content)
}

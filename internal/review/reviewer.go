package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pedagogue-ai/pedagogue/internal/llm"
	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

// Reviewer evaluates finished lesson plans against a pedagogical
// rubric. The review itself is an LLM call; scores and verdict are
// extracted deterministically from the review text.
type Reviewer struct {
	provider llm.Provider
	cfg      Config
}

// Config controls generation limits for the reviewer.
type Config struct {
	MaxTokens int
}

// DefaultConfig returns the standard reviewer configuration.
func DefaultConfig() Config {
	return Config{MaxTokens: 2000}
}

// Review runs cold: the rubric needs consistency, not creativity.
const reviewTemperature = 0.3

// NewReviewer creates a quality reviewer.
func NewReviewer(provider llm.Provider, cfg Config) *Reviewer {
	return &Reviewer{provider: provider, cfg: cfg}
}

// ReviewLessonPlan reviews the assembled plan in a single call and
// derives scores and the overall verdict from the review text.
func (r *Reviewer) ReviewLessonPlan(ctx context.Context, p *plan.LessonPlan, grade int, subject string) plan.QAReview {
	text, err := r.generate(ctx, "qa-review", buildReviewMessage(p.FormatText(), grade, subject))
	if err != nil {
		return plan.QAReview{Status: plan.Fail(err)}
	}

	scores := ExtractScores(text)
	status := ExtractStatus(text)

	return plan.QAReview{
		Status:        plan.OK(),
		ReviewText:    text,
		Scores:        scores,
		OverallStatus: status,
		ReadyToUse:    status == plan.ReviewReady,
	}
}

// CheckAgeAppropriateness asks whether content fits the target grade.
func (r *Reviewer) CheckAgeAppropriateness(ctx context.Context, content string, grade int) plan.TextResult {
	text, err := r.generate(ctx, "age-check", buildAgeCheckMessage(content, grade))
	if err != nil {
		return plan.TextResult{Status: plan.Fail(err)}
	}
	return plan.TextResult{Status: plan.OK(), Text: text}
}

// SuggestImprovements proposes concrete edits for one plan component.
func (r *Reviewer) SuggestImprovements(ctx context.Context, component plan.Component, body string, grade int) plan.TextResult {
	text, err := r.generate(ctx, "improvements", buildImprovementsMessage(component, body, grade))
	if err != nil {
		return plan.TextResult{Status: plan.Fail(err)}
	}
	return plan.TextResult{Status: plan.OK(), Text: text}
}

func (r *Reviewer) generate(ctx context.Context, purpose, userMsg string) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	req := llm.Request{
		System: reviewerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: reviewTemperature,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("review generation: %w", err)
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

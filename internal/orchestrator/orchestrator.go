package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pedagogue-ai/pedagogue/internal/content"
	"github.com/pedagogue-ai/pedagogue/internal/llm"
	"github.com/pedagogue-ai/pedagogue/internal/memory"
	"github.com/pedagogue-ai/pedagogue/internal/pedagogy"
	"github.com/pedagogue-ai/pedagogue/internal/plan"
	"github.com/pedagogue-ai/pedagogue/internal/review"
	"github.com/pedagogue-ai/pedagogue/internal/session"
	"github.com/pedagogue-ai/pedagogue/internal/standards"
	"github.com/pedagogue-ai/pedagogue/internal/store"
	"github.com/pedagogue-ai/pedagogue/internal/trace"
)

// Orchestrator runs the multi-phase lesson-plan pipeline. Component
// failures never abort a run: every sub-result lands in the plan with
// its own success flag, and only request validation propagates as an
// error.
type Orchestrator struct {
	provider  llm.Provider
	standards *standards.Service
	memory    *memory.Bank
	sessions  *session.Service
	events    store.EventRepo
	log       zerolog.Logger

	// TraceDir, when set, receives a JSON trace file per request.
	TraceDir string
}

// New wires the orchestrator. The event repo may be nil when no store
// is open (provenance is then skipped).
func New(provider llm.Provider, std *standards.Service, mem *memory.Bank, sess *session.Service, events store.EventRepo, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		provider:  provider,
		standards: std,
		memory:    mem,
		sessions:  sess,
		events:    events,
		log:       log,
	}
}

// GenerateLessonPlan runs the full pipeline for one request.
func (o *Orchestrator) GenerateLessonPlan(ctx context.Context, req plan.Request) (*plan.LessonPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	tr := trace.New(o.log)

	// Components are per-request so their calls share this request's
	// trace and nothing leaks between concurrent runs.
	gen := content.NewGenerator(o.provider, content.DefaultConfig())
	adv := pedagogy.NewAdvisor(o.provider, pedagogy.DefaultConfig())
	rev := review.NewReviewer(o.provider, review.DefaultConfig())

	hints := o.memory.Suggestions(req.TeacherID)
	if len(hints.Strategies) > 0 {
		tr.ToolCall("memory", "suggestions", map[string]any{"strategies": hints.Strategies})
	}

	// Session history is kept only for explicit sessions. A one-shot
	// request without a session ID leaves no conversational trace.
	sessionID := ""
	if req.SessionID != "" {
		sessionID = o.sessions.GetOrCreate(req.SessionID, req.TeacherID)
		o.sessions.AppendMessage(sessionID, session.RoleUser,
			fmt.Sprintf("План уроку: %d клас, %s, %s", req.Grade, req.Subject, req.Topic),
			map[string]string{"subject": req.Subject})
	}

	p := &plan.LessonPlan{
		Metadata: plan.Metadata{
			Grade:           req.Grade,
			Subject:         req.Subject,
			Topic:           req.Topic,
			DurationMinutes: req.DurationMinutes,
		},
	}

	// Phase 1: standards lookup and strategy advice are independent.
	// Both always run to completion; a failure on one side must not
	// cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		p.Standards = o.standards.Get(req.Grade, req.Subject)
		tr.ToolCall("standards", "lookup", map[string]any{"success": p.Standards.Success, "file": p.Standards.File})
		return nil
	})
	g.Go(func() error {
		p.LearningStrategies = adv.SuggestStrategies(ctx, req.Grade, req.Subject, req.Topic, req.DurationMinutes)
		tr.AgentCall("pedagogy", "strategies", map[string]any{"success": p.LearningStrategies.Success, "bloom": p.LearningStrategies.BloomLevel})
		return nil
	})
	_ = g.Wait()

	// Phase 2: content is built sequentially, later steps reading the
	// accumulated earlier results.
	p.Objectives = gen.Objectives(ctx, req.Grade, req.Subject, req.Topic, p.Standards.LearningOutcomes)
	tr.AgentCall("content", "objectives", map[string]any{"success": p.Objectives.Success})

	p.Warmup = gen.Warmup(ctx, req.Grade, req.Topic, warmupMinutes(req.DurationMinutes))
	tr.AgentCall("content", "warmup", map[string]any{"success": p.Warmup.Success})

	concepts := keyConcepts(req.Topic, p.Standards.Competencies)
	p.Instruction = gen.DirectInstruction(ctx, req.Grade, req.Topic, concepts, req.DurationMinutes/3)
	tr.AgentCall("content", "instruction", map[string]any{"success": p.Instruction.Success})

	p.GuidedPractice = gen.PracticeActivity(ctx, req.Grade, req.Topic, plan.PracticeGuided)
	tr.AgentCall("content", "guided-practice", map[string]any{"success": p.GuidedPractice.Success})

	p.Differentiation = adv.CreateDifferentiationTiers(ctx, differentiationBase(p.GuidedPractice, req.Topic), req.Grade)
	tr.AgentCall("pedagogy", "differentiation", map[string]any{"success": p.Differentiation.Success})

	p.IndependentPractice = gen.PracticeActivity(ctx, req.Grade, req.Topic, plan.PracticeIndependent)
	tr.AgentCall("content", "independent-practice", map[string]any{"success": p.IndependentPractice.Success})

	p.FormativeAssessment = gen.AssessmentItems(ctx, req.Grade, req.Topic, plan.AssessmentFormative, 5)
	tr.AgentCall("content", "formative-assessment", map[string]any{"success": p.FormativeAssessment.Success})

	bloom := p.LearningStrategies.BloomLevel
	if bloom == "" {
		bloom = pedagogy.DefaultBloomLevel
	}
	p.SummativeAssessment = adv.DesignAssessment(ctx, req.Grade, req.Topic, bloom)
	tr.AgentCall("pedagogy", "summative-assessment", map[string]any{"success": p.SummativeAssessment.Success})

	// Phase 3: assemble and review once.
	p.GeneratedAt = time.Now()
	p.QAReview = rev.ReviewLessonPlan(ctx, p, req.Grade, req.Subject)
	tr.AgentCall("review", "qa-review", map[string]any{
		"success": p.QAReview.Success,
		"status":  string(p.QAReview.OverallStatus),
		"average": p.QAReview.Scores.Average,
	})

	o.postProcess(ctx, tr, req, sessionID, p, time.Since(started))

	return p, nil
}

// postProcess records the finished run: memory, session, provenance
// event, trace flush. Failures here are logged, never surfaced.
func (o *Orchestrator) postProcess(ctx context.Context, tr *trace.Tracer, req plan.Request, sessionID string, p *plan.LessonPlan, elapsed time.Duration) {
	o.memory.RecordLessonRequest(req.TeacherID, memory.LessonRecord{
		Grade:      req.Grade,
		Subject:    req.Subject,
		Topic:      req.Topic,
		Strategies: p.LearningStrategies.EngagementMethods,
	}, successfulActivities(p))

	if sessionID != "" {
		o.sessions.AppendMessage(sessionID, session.RoleAssistant,
			fmt.Sprintf("Згенеровано план уроку %q (%s)", req.Topic, p.QAReview.OverallStatus),
			map[string]string{"subject": req.Subject})
		o.sessions.AppendPlan(sessionID, session.PlanSummary{
			Grade:        req.Grade,
			Subject:      req.Subject,
			Topic:        req.Topic,
			ReviewStatus: string(p.QAReview.OverallStatus),
			ReviewScore:  p.QAReview.Scores.Average,
			GeneratedAt:  p.GeneratedAt,
		})
	}

	if o.events != nil {
		planJSON, err := json.Marshal(p)
		if err != nil {
			planJSON = nil
		}
		if err := o.events.AppendPlanEvent(ctx, store.PlanEventData{
			TeacherID:       req.TeacherID,
			SessionID:       sessionID,
			Grade:           req.Grade,
			Subject:         req.Subject,
			Topic:           req.Topic,
			DurationMinutes: req.DurationMinutes,
			ReviewStatus:    string(p.QAReview.OverallStatus),
			ReviewScore:     p.QAReview.Scores.Average,
			Success:         p.QAReview.Success,
			ElapsedMs:       elapsed.Milliseconds(),
			PlanJSON:        string(planJSON),
		}); err != nil {
			o.log.Warn().Err(err).Msg("append plan event")
		}
	}

	if o.TraceDir != "" {
		path := filepath.Join(o.TraceDir, "trace_"+tr.RequestID()+".json")
		if err := tr.WriteFile(path); err != nil {
			o.log.Warn().Err(err).Msg("write trace file")
		}
	}

	o.log.Info().
		Str("request_id", tr.RequestID()).
		Int("grade", req.Grade).
		Str("subject", req.Subject).
		Str("topic", req.Topic).
		Str("review_status", string(p.QAReview.OverallStatus)).
		Dur("elapsed", elapsed).
		Msg("lesson plan generated")
}

// warmupMinutes sizes the opening activity relative to the lesson,
// clamped to a classroom-realistic 3-10 minutes.
func warmupMinutes(duration int) int {
	m := duration / 9
	if m < 3 {
		m = 3
	}
	if m > 10 {
		m = 10
	}
	return m
}

// keyConcepts builds the instruction focus list: the topic plus up to
// three substantive competencies, five entries at most.
func keyConcepts(topic string, competencies []string) []string {
	concepts := []string{topic}
	added := 0
	for _, c := range competencies {
		if added == 3 || len(concepts) == 5 {
			break
		}
		if len([]rune(c)) > 10 {
			concepts = append(concepts, c)
			added++
		}
	}
	return concepts
}

// differentiationBase picks the text the tiers are built from. The
// guided activity is the canonical base; when it failed, the topic
// stands in so the tiers step still produces something usable.
func differentiationBase(guided plan.ActivityResult, topic string) string {
	if guided.Success && guided.Activity != "" {
		return guided.Activity
	}
	return fmt.Sprintf("Базова активність за темою: %s", topic)
}

// successfulActivities lists the practice components that generated,
// for the teacher's activity history.
func successfulActivities(p *plan.LessonPlan) []string {
	var out []string
	if p.Warmup.Success {
		out = append(out, "розминка")
	}
	if p.GuidedPractice.Success {
		out = append(out, "керована практика")
	}
	if p.IndependentPractice.Success {
		out = append(out, "самостійна практика")
	}
	return out
}

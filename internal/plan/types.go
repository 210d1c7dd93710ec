package plan

import (
	"fmt"
	"strings"
	"time"
)

// Status is the uniform result envelope shared by every generation
// component. A component never reports failure by omission: a failed
// call still produces its typed result with Success=false and the
// cause in Err.
type Status struct {
	Success bool   `json:"success"`
	Err     string `json:"error,omitempty"`
}

// Fail builds a failed Status from an error.
func Fail(err error) Status {
	return Status{Success: false, Err: err.Error()}
}

// OK is the successful Status.
func OK() Status {
	return Status{Success: true}
}

// TextResult carries a single block of generated text
// (objectives, warm-up, direct instruction).
type TextResult struct {
	Status
	Text string `json:"text"`
}

// PracticeKind distinguishes guided from independent practice.
type PracticeKind string

const (
	PracticeGuided      PracticeKind = "guided"
	PracticeIndependent PracticeKind = "independent"
)

// ActivityResult is a generated practice activity.
type ActivityResult struct {
	Status
	Activity string       `json:"activity"`
	Kind     PracticeKind `json:"kind"`
}

// AssessmentKind distinguishes formative from summative assessment.
type AssessmentKind string

const (
	AssessmentFormative AssessmentKind = "formative"
	AssessmentSummative AssessmentKind = "summative"
)

// AssessmentItemsResult is a generated set of assessment tasks.
type AssessmentItemsResult struct {
	Status
	Items string         `json:"items"`
	Kind  AssessmentKind `json:"kind"`
	Count int            `json:"count"`
}

// StrategiesResult is the Strategy Advisor output: the generated
// strategies text plus the two signals extracted from it.
type StrategiesResult struct {
	Status
	Strategies        string   `json:"strategies"`
	BloomLevel        string   `json:"bloom_level"`
	EngagementMethods []string `json:"engagement_methods"`
}

// TiersResult is a three-tier differentiation of a base activity.
type TiersResult struct {
	Status
	Tiers string `json:"tiers"`
}

// AssessmentDesignResult is a learning-science assessment design.
type AssessmentDesignResult struct {
	Status
	Design string `json:"design"`
}

// StandardsResult is the curriculum-standards lookup output. On a miss
// it carries the list of available local files and a naming hint
// instead of content.
type StandardsResult struct {
	Status
	Source           string   `json:"source,omitempty"`
	File             string   `json:"file,omitempty"`
	Competencies     []string `json:"competencies,omitempty"`
	LearningOutcomes []string `json:"learning_outcomes,omitempty"`
	TextPreview      string   `json:"text_preview,omitempty"`
	AvailableFiles   []string `json:"available_files,omitempty"`
	Hint             string   `json:"hint,omitempty"`
}

// ReviewStatus is the reviewer's overall verdict.
type ReviewStatus string

const (
	ReviewReady        ReviewStatus = "ready"
	ReviewMinorChanges ReviewStatus = "minor_changes"
	ReviewMajorChanges ReviewStatus = "major_changes"
	ReviewUnknown      ReviewStatus = "unknown"
)

// Scores holds the rubric scores parsed out of a review.
type Scores struct {
	Average    float64 `json:"average"`
	Individual []int   `json:"individual,omitempty"`
}

// QAReview is the quality review attached to a finished plan.
// Derived once from the review text; immutable afterwards.
type QAReview struct {
	Status
	ReviewText    string       `json:"review"`
	Scores        Scores       `json:"scores"`
	OverallStatus ReviewStatus `json:"overall_status"`
	ReadyToUse    bool         `json:"ready_to_use"`
}

// Metadata identifies the lesson a plan was generated for.
type Metadata struct {
	Grade           int    `json:"grade"`
	Subject         string `json:"subject"`
	Topic           string `json:"topic"`
	DurationMinutes int    `json:"duration"`
}

// LessonPlan is the composite artifact of one orchestration run.
// Every component field is always populated; a failed sub-call leaves
// its result with Success=false rather than an absent section.
type LessonPlan struct {
	Metadata            Metadata               `json:"metadata"`
	Standards           StandardsResult        `json:"standards"`
	LearningStrategies  StrategiesResult       `json:"learning_strategies"`
	Objectives          TextResult             `json:"objectives"`
	Warmup              TextResult             `json:"warmup"`
	Instruction         TextResult             `json:"instruction"`
	GuidedPractice      ActivityResult         `json:"guided_practice"`
	Differentiation     TiersResult            `json:"differentiation"`
	IndependentPractice ActivityResult         `json:"independent_practice"`
	FormativeAssessment AssessmentItemsResult  `json:"formative_assessment"`
	SummativeAssessment AssessmentDesignResult `json:"summative_assessment"`
	QAReview            QAReview               `json:"qa_review"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Request describes one lesson-plan generation request.
// Immutable once dispatched to the orchestrator.
type Request struct {
	Grade           int
	Subject         string
	Topic           string
	DurationMinutes int
	TeacherID       string
	SessionID       string
}

// ValidationError reports a malformed Request. It is the only failure
// the orchestrator surfaces to its caller; everything downstream is
// absorbed into result envelopes.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid lesson request: missing %s", strings.Join(e.Missing, ", "))
}

// Validate checks the request's required fields and applies the default
// duration. Grade must be in 1-11, subject and topic non-empty.
func (r *Request) Validate() error {
	var missing []string
	if r.Grade < 1 || r.Grade > 11 {
		missing = append(missing, "grade")
	}
	if strings.TrimSpace(r.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(r.Topic) == "" {
		missing = append(missing, "topic")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	if r.DurationMinutes <= 0 {
		r.DurationMinutes = DefaultDurationMinutes
	}
	return nil
}

// DefaultDurationMinutes is assumed when a request omits the duration.
const DefaultDurationMinutes = 45

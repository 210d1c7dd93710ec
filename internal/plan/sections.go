package plan

import (
	"fmt"
	"strings"
)

// Component names the eleven sections of a lesson plan. The set is
// fixed: every plan renders all eleven, in this order, whether or not
// the underlying call succeeded.
type Component string

const (
	ComponentStandards           Component = "standards"
	ComponentLearningStrategies  Component = "learning_strategies"
	ComponentObjectives          Component = "objectives"
	ComponentWarmup              Component = "warmup"
	ComponentInstruction         Component = "instruction"
	ComponentGuidedPractice      Component = "guided_practice"
	ComponentDifferentiation     Component = "differentiation"
	ComponentIndependentPractice Component = "independent_practice"
	ComponentFormativeAssessment Component = "formative_assessment"
	ComponentSummativeAssessment Component = "summative_assessment"
	ComponentQAReview            Component = "qa_review"
)

// Components lists the plan sections in rendering order.
var Components = []Component{
	ComponentStandards,
	ComponentLearningStrategies,
	ComponentObjectives,
	ComponentWarmup,
	ComponentInstruction,
	ComponentGuidedPractice,
	ComponentDifferentiation,
	ComponentIndependentPractice,
	ComponentFormativeAssessment,
	ComponentSummativeAssessment,
	ComponentQAReview,
}

// componentTitles maps a component to its Ukrainian heading for
// rendered output.
var componentTitles = map[Component]string{
	ComponentStandards:           "Стандарти НУШ",
	ComponentLearningStrategies:  "Стратегії навчання",
	ComponentObjectives:          "Цілі навчання (SMART)",
	ComponentWarmup:              "Розминка",
	ComponentInstruction:         "Пряме навчання",
	ComponentGuidedPractice:      "Керована практика",
	ComponentDifferentiation:     "Диференціація (3 рівні)",
	ComponentIndependentPractice: "Самостійна практика",
	ComponentFormativeAssessment: "Формувальне оцінювання",
	ComponentSummativeAssessment: "Підсумкове оцінювання",
	ComponentQAReview:            "Рекомендації експерта",
}

// Title returns the Ukrainian heading for a component.
func (c Component) Title() string {
	if t, ok := componentTitles[c]; ok {
		return t
	}
	return string(c)
}

// Section is one rendered component of a plan: its key, outcome, and
// principal text. The principal text per component is fixed at
// definition time (the field-priority table), not discovered at
// runtime.
type Section struct {
	Key     Component
	Success bool
	Err     string
	Body    string
}

// Sections returns the eleven-section view of the plan in fixed order.
func (p *LessonPlan) Sections() []Section {
	return []Section{
		{ComponentStandards, p.Standards.Success, p.Standards.Err, standardsBody(p.Standards)},
		{ComponentLearningStrategies, p.LearningStrategies.Success, p.LearningStrategies.Err, p.LearningStrategies.Strategies},
		{ComponentObjectives, p.Objectives.Success, p.Objectives.Err, p.Objectives.Text},
		{ComponentWarmup, p.Warmup.Success, p.Warmup.Err, p.Warmup.Text},
		{ComponentInstruction, p.Instruction.Success, p.Instruction.Err, p.Instruction.Text},
		{ComponentGuidedPractice, p.GuidedPractice.Success, p.GuidedPractice.Err, p.GuidedPractice.Activity},
		{ComponentDifferentiation, p.Differentiation.Success, p.Differentiation.Err, p.Differentiation.Tiers},
		{ComponentIndependentPractice, p.IndependentPractice.Success, p.IndependentPractice.Err, p.IndependentPractice.Activity},
		{ComponentFormativeAssessment, p.FormativeAssessment.Success, p.FormativeAssessment.Err, p.FormativeAssessment.Items},
		{ComponentSummativeAssessment, p.SummativeAssessment.Success, p.SummativeAssessment.Err, p.SummativeAssessment.Design},
		{ComponentQAReview, p.QAReview.Success, p.QAReview.Err, p.QAReview.ReviewText},
	}
}

// standardsBody renders the standards result as flat text for the
// reviewer and exports.
func standardsBody(s StandardsResult) string {
	if !s.Success {
		return ""
	}
	var b strings.Builder
	if len(s.Competencies) > 0 {
		b.WriteString("Компетентності:\n")
		for _, c := range s.Competencies {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}
	if len(s.LearningOutcomes) > 0 {
		b.WriteString("Очікувані результати навчання:\n")
		for _, o := range s.LearningOutcomes {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}
	if b.Len() == 0 {
		return s.TextPreview
	}
	return b.String()
}

// FormatText renders the plan as flat labeled text, one block per
// component. This is the exact form the quality reviewer receives.
func (p *LessonPlan) FormatText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== METADATA ===\nКлас: %d\nПредмет: %s\nТема: %s\nТривалість: %d хвилин\n\n",
		p.Metadata.Grade, p.Metadata.Subject, p.Metadata.Topic, p.Metadata.DurationMinutes)

	for _, s := range p.Sections() {
		if s.Key == ComponentQAReview {
			// The review is produced from this rendering, not part of it.
			continue
		}
		fmt.Fprintf(&b, "=== %s ===\n", strings.ToUpper(strings.ReplaceAll(string(s.Key), "_", " ")))
		if s.Success {
			b.WriteString(s.Body)
		} else {
			fmt.Fprintf(&b, "(не згенеровано: %s)", s.Err)
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

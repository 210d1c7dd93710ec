package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F43F5E"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(1, 2)
)

// renderPlanSummary builds the post-generation console summary: one
// line per section with its outcome, then the review verdict.
func renderPlanSummary(p *plan.LessonPlan) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Урок: %s", p.Metadata.Topic)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d клас · %s · %d хв",
		p.Metadata.Grade, p.Metadata.Subject, p.Metadata.DurationMinutes)))
	b.WriteString("\n\n")

	for _, s := range p.Sections() {
		mark := okStyle.Render("✓")
		note := ""
		if !s.Success {
			mark = failStyle.Render("✗")
			note = dimStyle.Render(" — " + s.Err)
		}
		fmt.Fprintf(&b, "%s %s%s\n", mark, s.Key.Title(), note)
	}

	if p.QAReview.Success {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Оцінка експерта: %.1f/10 (%s)\n",
			p.QAReview.Scores.Average, reviewStatusLabel(p.QAReview.OverallStatus))
	}

	return summaryStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func reviewStatusLabel(s plan.ReviewStatus) string {
	switch s {
	case plan.ReviewReady:
		return "готовий до використання"
	case plan.ReviewMinorChanges:
		return "потребує незначних змін"
	case plan.ReviewMajorChanges:
		return "потребує значного доопрацювання"
	default:
		return "статус невідомий"
	}
}

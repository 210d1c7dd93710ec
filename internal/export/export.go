package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

// DefaultFilename builds the conventional export name:
// Урок_<grade>_клас_<subject>_<timestamp>.<ext>
func DefaultFilename(p *plan.LessonPlan, ext string) string {
	subject := strings.ReplaceAll(strings.TrimSpace(p.Metadata.Subject), " ", "_")
	stamp := p.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}
	return fmt.Sprintf("Урок_%d_клас_%s_%s.%s",
		p.Metadata.Grade, subject, stamp.Format("2006-01-02_15-04-05"), ext)
}

// ToTXT writes the plan as plain labeled text.
func ToTXT(p *plan.LessonPlan, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "ПЛАН УРОКУ\n")
	fmt.Fprintf(&b, "Клас: %d\nПредмет: %s\nТема: %s\nТривалість: %d хвилин\n\n",
		p.Metadata.Grade, p.Metadata.Subject, p.Metadata.Topic, p.Metadata.DurationMinutes)

	for _, s := range p.Sections() {
		if s.Key == plan.ComponentQAReview {
			continue
		}
		if !s.Success || strings.TrimSpace(s.Body) == "" {
			continue
		}
		fmt.Fprintf(&b, "%s\n%s\n%s\n\n", s.Key.Title(), strings.Repeat("-", 40), strings.TrimSpace(s.Body))
	}

	appendReviewTXT(&b, p.QAReview)

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// ToMarkdown writes the plan as a Markdown document.
func ToMarkdown(p *plan.LessonPlan, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Урок: %s\n\n", p.Metadata.Topic)
	fmt.Fprintf(&b, "| Клас | Предмет | Тривалість |\n|---|---|---|\n| %d | %s | %d хв |\n\n",
		p.Metadata.Grade, p.Metadata.Subject, p.Metadata.DurationMinutes)

	for _, s := range p.Sections() {
		if s.Key == plan.ComponentQAReview {
			continue
		}
		if !s.Success || strings.TrimSpace(s.Body) == "" {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", s.Key.Title(), strings.TrimSpace(s.Body))
	}

	if p.QAReview.Success {
		fmt.Fprintf(&b, "## %s\n\n", plan.ComponentQAReview.Title())
		fmt.Fprintf(&b, "Середня оцінка: %.1f/10\n\n", p.QAReview.Scores.Average)
		fmt.Fprintf(&b, "Статус: %s\n\n", statusLabel(p.QAReview.OverallStatus))
		fmt.Fprintf(&b, "%s\n", strings.TrimSpace(p.QAReview.ReviewText))
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func appendReviewTXT(b *strings.Builder, qa plan.QAReview) {
	if !qa.Success {
		return
	}
	fmt.Fprintf(b, "%s\n%s\n", plan.ComponentQAReview.Title(), strings.Repeat("-", 40))
	fmt.Fprintf(b, "Середня оцінка: %.1f/10\nСтатус: %s\n\n%s\n",
		qa.Scores.Average, statusLabel(qa.OverallStatus), strings.TrimSpace(qa.ReviewText))
}

func statusLabel(s plan.ReviewStatus) string {
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

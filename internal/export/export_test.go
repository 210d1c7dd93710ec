package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

func samplePlan() *plan.LessonPlan {
	return &plan.LessonPlan{
		Metadata:   plan.Metadata{Grade: 5, Subject: "Математика", Topic: "Дроби", DurationMinutes: 45},
		Objectives: plan.TextResult{Status: plan.OK(), Text: "Учні зможуть порівнювати дроби."},
		Warmup:     plan.TextResult{Status: plan.Status{Success: false, Err: "provider unavailable"}},
		QAReview: plan.QAReview{
			Status:        plan.OK(),
			ReviewText:    "Гарний план. 8/10",
			Scores:        plan.Scores{Average: 8.0, Individual: []int{8}},
			OverallStatus: plan.ReviewReady,
			ReadyToUse:    true,
		},
		GeneratedAt: time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
	}
}

func TestDefaultFilename(t *testing.T) {
	got := DefaultFilename(samplePlan(), "md")
	want := "Урок_5_клас_Математика_2026-08-28_10-30-00.md"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.txt")
	if err := ToTXT(samplePlan(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.Contains(text, "Цілі навчання (SMART)") {
		t.Error("missing objectives section title")
	}
	if !strings.Contains(text, "Учні зможуть порівнювати дроби.") {
		t.Error("missing objectives body")
	}
	if strings.Contains(text, "Розминка") {
		t.Error("failed sections must be skipped")
	}
	if !strings.Contains(text, "Середня оцінка: 8.0/10") {
		t.Error("missing review score")
	}
	// The review is rendered once by the dedicated block, not again as
	// a regular section.
	if n := strings.Count(text, plan.ComponentQAReview.Title()); n != 1 {
		t.Errorf("review heading appears %d times, want 1", n)
	}
	if n := strings.Count(text, "Гарний план. 8/10"); n != 1 {
		t.Errorf("review text appears %d times, want 1", n)
	}
}

func TestToMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.md")
	if err := ToMarkdown(samplePlan(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	if !strings.Contains(text, "# Урок: Дроби") {
		t.Error("missing title")
	}
	if !strings.Contains(text, "## Цілі навчання (SMART)") {
		t.Error("missing objectives heading")
	}
	if !strings.Contains(text, "готовий до використання") {
		t.Error("missing review status")
	}
}

package review

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

var scorePattern = regexp.MustCompile(`(\d+)/10`)

// DefaultScore is assumed when the review text carries no N/10 marks.
const DefaultScore = 7.0

// ExtractScores collects every N/10 mark from the review text and
// averages them. A review without marks gets the neutral default.
func ExtractScores(text string) plan.Scores {
	matches := scorePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return plan.Scores{Average: DefaultScore}
	}

	var individual []int
	sum := 0
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		individual = append(individual, n)
		sum += n
	}
	if len(individual) == 0 {
		return plan.Scores{Average: DefaultScore}
	}

	return plan.Scores{
		Average:    float64(sum) / float64(len(individual)),
		Individual: individual,
	}
}

// statusPhrases maps the reviewer's closing phrases to verdicts,
// checked in order from ready down to major changes.
var statusPhrases = []struct {
	phrase string
	status plan.ReviewStatus
}{
	{"готовий до використання", plan.ReviewReady},
	{"потребує незначних змін", plan.ReviewMinorChanges},
	{"потребує значного доопрацювання", plan.ReviewMajorChanges},
}

// ExtractStatus finds the reviewer's verdict phrase in the text.
func ExtractStatus(text string) plan.ReviewStatus {
	lower := strings.ToLower(text)
	for _, sp := range statusPhrases {
		if strings.Contains(lower, sp.phrase) {
			return sp.status
		}
	}
	return plan.ReviewUnknown
}

// CulturalIssue flags a phrase that warrants a human look.
type CulturalIssue struct {
	Phrase  string
	Context string
}

// sensitiveMarkers is a keyword blocklist. This is a weak placeholder
// heuristic: substring presence says nothing about how the phrase is
// used, so hits are advisory and never block a plan.
var sensitiveMarkers = []string{
	"стереотип",
	"дискримінац",
	"ксенофоб",
	"сексизм",
}

// CheckCulturalSensitivity scans content for the marker phrases and
// returns the hits with surrounding context.
func CheckCulturalSensitivity(content string) []CulturalIssue {
	lower := strings.ToLower(content)
	var issues []CulturalIssue
	for _, marker := range sensitiveMarkers {
		idx := strings.Index(lower, marker)
		if idx < 0 {
			continue
		}
		start := idx - 40
		if start < 0 {
			start = 0
		}
		end := idx + len(marker) + 40
		if end > len(content) {
			end = len(content)
		}
		// Keep the context window on rune boundaries.
		for start > 0 && !utf8.RuneStart(content[start]) {
			start--
		}
		for end < len(content) && !utf8.RuneStart(content[end]) {
			end++
		}
		issues = append(issues, CulturalIssue{
			Phrase:  marker,
			Context: strings.TrimSpace(content[start:end]),
		})
	}
	return issues
}

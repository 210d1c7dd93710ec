package standards

import "strings"

// Document holds the section-tagged content of a standards document.
type Document struct {
	Competencies     []string
	LearningOutcomes []string
	ContentLines     []string
	AssessmentLines  []string
}

// minLineRunes filters out headings, numbering and noise lines.
const minLineRunes = 20

// parseSections scans the document line by line, switching the current
// section on Ukrainian heading keywords and collecting substantive
// lines into it. Lines are deduplicated within a section.
func parseSections(text string) Document {
	var doc Document

	type bucket struct {
		lines *[]string
		seen  map[string]bool
	}
	buckets := map[string]bucket{
		"competencies": {&doc.Competencies, map[string]bool{}},
		"outcomes":     {&doc.LearningOutcomes, map[string]bool{}},
		"content":      {&doc.ContentLines, map[string]bool{}},
		"assessment":   {&doc.AssessmentLines, map[string]bool{}},
	}

	section := ""
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		switch {
		case strings.Contains(lower, "компетентност"):
			section = "competencies"
			continue
		case strings.Contains(lower, "результат") && strings.Contains(lower, "навчан"):
			section = "outcomes"
			continue
		case strings.Contains(lower, "зміст"):
			section = "content"
			continue
		case strings.Contains(lower, "оцінюван"):
			section = "assessment"
			continue
		}

		if section == "" || len([]rune(trimmed)) <= minLineRunes {
			continue
		}

		b := buckets[section]
		clean := strings.TrimLeft(trimmed, "-•* \t")
		if b.seen[clean] {
			continue
		}
		b.seen[clean] = true
		*b.lines = append(*b.lines, clean)
	}

	return doc
}

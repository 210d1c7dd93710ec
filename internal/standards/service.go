package standards

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

// TextExtractor converts a curriculum document into plain text.
// The built-in extractor handles .txt and .md files; PDF or DOCX
// support is plugged in by the caller.
type TextExtractor func(path string) (string, error)

// Service looks up curriculum standards in a local document directory.
// It never reaches the network: a miss reports the available files and
// a naming hint instead.
type Service struct {
	dir     string
	extract TextExtractor
}

// NewService creates a standards service over the given directory.
// A nil extractor falls back to the built-in plain-text extractor.
func NewService(dir string, extractor TextExtractor) *Service {
	if extractor == nil {
		extractor = extractPlainText
	}
	return &Service{dir: dir, extract: extractor}
}

const previewLimit = 500

// Get finds and parses the standards document for a grade and subject.
func (s *Service) Get(grade int, subject string) plan.StandardsResult {
	files, err := s.listFiles()
	if err != nil {
		return plan.StandardsResult{Status: plan.Fail(fmt.Errorf("read standards dir: %w", err))}
	}

	file := matchFile(files, grade, subject)
	if file == "" {
		return plan.StandardsResult{
			Status:         plan.Status{Success: false, Err: fmt.Sprintf("документ стандартів для %d класу з предмета %q не знайдено", grade, subject)},
			AvailableFiles: files,
			Hint:           fmt.Sprintf("додайте файл із назвою на кшталт %q у %s", exampleFilename(grade, subject), s.dir),
		}
	}

	text, err := s.extract(filepath.Join(s.dir, file))
	if err != nil {
		return plan.StandardsResult{
			Status:         plan.Fail(fmt.Errorf("extract %s: %w", file, err)),
			AvailableFiles: files,
			File:           file,
		}
	}

	doc := parseSections(text)

	preview := text
	if len([]rune(preview)) > previewLimit {
		preview = string([]rune(preview)[:previewLimit])
	}

	return plan.StandardsResult{
		Status:           plan.OK(),
		Source:           "local",
		File:             file,
		Competencies:     doc.Competencies,
		LearningOutcomes: doc.LearningOutcomes,
		TextPreview:      preview,
	}
}

// ListAvailable returns the document filenames in the standards directory.
func (s *Service) ListAvailable() ([]string, error) {
	return s.listFiles()
}

func (s *Service) listFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}

// matchFile picks the best document for a grade and subject. Exact
// grade+subject substring matches win; a subject-only match is the
// fallback.
func matchFile(files []string, grade int, subject string) string {
	sub := strings.ToLower(strings.TrimSpace(subject))
	gradeStr := fmt.Sprintf("%d", grade)

	for _, f := range files {
		name := strings.ToLower(f)
		if strings.Contains(name, sub) && containsGrade(name, gradeStr) {
			return f
		}
	}

	for _, f := range files {
		if strings.Contains(strings.ToLower(f), sub) {
			return f
		}
	}

	// Keyword fallback: any word of the subject longer than three runes.
	for _, word := range strings.Fields(sub) {
		if len([]rune(word)) <= 3 {
			continue
		}
		for _, f := range files {
			if strings.Contains(strings.ToLower(f), word) {
				return f
			}
		}
	}

	return ""
}

// containsGrade matches the grade number as a whole token, so grade 1
// does not match "11_клас".
func containsGrade(name, gradeStr string) bool {
	for i := 0; i+len(gradeStr) <= len(name); i++ {
		if name[i:i+len(gradeStr)] != gradeStr {
			continue
		}
		beforeOK := i == 0 || !isDigit(name[i-1])
		after := i + len(gradeStr)
		afterOK := after == len(name) || !isDigit(name[after])
		if beforeOK && afterOK {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func exampleFilename(grade int, subject string) string {
	sub := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(subject), " ", "_"))
	return fmt.Sprintf("%s_%d_клас.txt", sub, grade)
}

// extractPlainText reads .txt and .md documents.
func extractPlainText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported document format %q (provide a TextExtractor)", filepath.Ext(path))
	}
}

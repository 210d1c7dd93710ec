package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

// Profile accumulates what the bank knows about one teacher. Counters
// back the top-N suggestions; the slices in Suggestions are derived.
type Profile struct {
	TeacherID     string         `json:"teacher_id"`
	Subjects      map[string]int `json:"subjects"`
	Grades        map[int]int    `json:"grades"`
	Strategies    map[string]int `json:"strategies"`
	Activities    map[string]int `json:"activities"`
	TeachingStyle string         `json:"teaching_style,omitempty"`
	ClassSize     int            `json:"class_size,omitempty"`
	LessonCount   int            `json:"lesson_count"`
	History       []LessonRecord `json:"history"`
}

// LessonRecord is one remembered lesson request.
type LessonRecord struct {
	Grade      int       `json:"grade"`
	Subject    string    `json:"subject"`
	Topic      string    `json:"topic"`
	Strategies []string  `json:"strategies,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Suggestions is the personalization summary handed to the orchestrator.
type Suggestions struct {
	Subjects      []string `json:"subjects,omitempty"`
	Grades        []int    `json:"grades,omitempty"`
	Strategies    []string `json:"strategies,omitempty"`
	Activities    []string `json:"activities,omitempty"`
	TeachingStyle string   `json:"teaching_style,omitempty"`
	ClassSize     int      `json:"class_size,omitempty"`
}

// Bank holds teacher profiles in memory, guarded for concurrent plan
// runs. Persistence happens through JSON snapshots.
type Bank struct {
	mu       sync.Mutex
	profiles map[string]*Profile
}

// NewBank creates an empty memory bank.
func NewBank() *Bank {
	return &Bank{profiles: make(map[string]*Profile)}
}

// getOrCreate returns the profile for a teacher, creating it on first use.
// Callers must hold the mutex.
func (b *Bank) getOrCreate(teacherID string) *Profile {
	p, ok := b.profiles[teacherID]
	if !ok {
		p = &Profile{
			TeacherID:  teacherID,
			Subjects:   make(map[string]int),
			Grades:     make(map[int]int),
			Strategies: make(map[string]int),
			Activities: make(map[string]int),
		}
		b.profiles[teacherID] = p
	}
	return p
}

// RecordLessonRequest merges one lesson request into the profile.
// Merging is additive: counters grow, nothing is ever removed.
func (b *Bank) RecordLessonRequest(teacherID string, rec LessonRecord, activities []string) {
	if teacherID == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	p := b.getOrCreate(teacherID)
	p.Subjects[rec.Subject]++
	p.Grades[rec.Grade]++
	for _, s := range rec.Strategies {
		p.Strategies[s]++
	}
	for _, a := range activities {
		p.Activities[a]++
	}
	p.LessonCount++

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	p.History = append(p.History, rec)
}

// UpdateTeachingStyle records the teacher's self-described style.
func (b *Bank) UpdateTeachingStyle(teacherID, style string) {
	if teacherID == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.getOrCreate(teacherID).TeachingStyle = style
}

// UpdateClassSize records the teacher's class size.
func (b *Bank) UpdateClassSize(teacherID string, size int) {
	if teacherID == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.getOrCreate(teacherID).ClassSize = size
}

// Suggestions returns the personalization summary for a teacher: the
// three most used subjects and grades and the five most used strategies
// and activities. An unknown teacher gets an empty summary.
func (b *Bank) Suggestions(teacherID string) Suggestions {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.profiles[teacherID]
	if !ok {
		return Suggestions{}
	}

	return Suggestions{
		Subjects:      topStrings(p.Subjects, 3),
		Grades:        topInts(p.Grades, 3),
		Strategies:    topStrings(p.Strategies, 5),
		Activities:    topStrings(p.Activities, 5),
		TeachingStyle: p.TeachingStyle,
		ClassSize:     p.ClassSize,
	}
}

// History returns the most recent lesson records, newest first.
func (b *Bank) History(teacherID string, limit int) []LessonRecord {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.profiles[teacherID]
	if !ok {
		return nil
	}
	n := len(p.History)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]LessonRecord, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, p.History[i])
	}
	return out
}

// LessonCount returns the number of recorded lessons for a teacher.
func (b *Bank) LessonCount(teacherID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if p, ok := b.profiles[teacherID]; ok {
		return p.LessonCount
	}
	return 0
}

// ExportJSON serializes all profiles for snapshotting.
func (b *Bank) ExportJSON() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return json.MarshalIndent(b.profiles, "", "  ")
}

// ImportJSON restores profiles from a snapshot, replacing current state.
func (b *Bank) ImportJSON(data []byte) error {
	profiles := make(map[string]*Profile)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return fmt.Errorf("parse memory snapshot: %w", err)
	}
	for _, p := range profiles {
		if p.Subjects == nil {
			p.Subjects = make(map[string]int)
		}
		if p.Grades == nil {
			p.Grades = make(map[int]int)
		}
		if p.Strategies == nil {
			p.Strategies = make(map[string]int)
		}
		if p.Activities == nil {
			p.Activities = make(map[string]int)
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profiles = profiles
	return nil
}

// Export writes the JSON snapshot to a file.
func (b *Bank) Export(path string) error {
	data, err := b.ExportJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// topStrings returns up to n keys ordered by count descending, ties
// broken alphabetically for stable output.
func topStrings(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func topInts(counts map[int]int, n int) []int {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

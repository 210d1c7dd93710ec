package session

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role labels a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn in a session.
type Message struct {
	Role      Role              `json:"role"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// PlanSummary is the compact record of a generated plan kept in the
// session instead of the full plan body.
type PlanSummary struct {
	Grade        int       `json:"grade"`
	Subject      string    `json:"subject"`
	Topic        string    `json:"topic"`
	ReviewStatus string    `json:"review_status"`
	ReviewScore  float64   `json:"review_score"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// Session is one teacher conversation.
type Session struct {
	ID        string        `json:"id"`
	TeacherID string        `json:"teacher_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	Summary   string        `json:"summary,omitempty"`
	Messages  []Message     `json:"messages"`
	Plans     []PlanSummary `json:"plans,omitempty"`
}

// Service manages sessions in memory, guarded for concurrent plan runs.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewService creates an empty session service.
func NewService() *Service {
	return &Service{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session with the given ID, creating it when
// the ID is empty or unknown. The returned ID is always usable.
func (s *Service) GetOrCreate(id, teacherID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if _, ok := s.sessions[id]; ok {
			return id
		}
	} else {
		id = uuid.NewString()
	}

	s.sessions[id] = &Session{
		ID:        id,
		TeacherID: teacherID,
		CreatedAt: time.Now(),
	}
	return id
}

// AppendMessage adds a conversation turn to the session.
func (s *Service) AppendMessage(sessionID string, role Role, content string, metadata map[string]string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	sess.Messages = append(sess.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Metadata:  metadata,
	})
}

// AppendPlan records a generated plan summary in the session.
func (s *Service) AppendPlan(sessionID string, summary PlanSummary) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	if summary.GeneratedAt.IsZero() {
		summary.GeneratedAt = time.Now()
	}
	sess.Plans = append(sess.Plans, summary)
}

// History returns the most recent messages, oldest first.
func (s *Service) History(sessionID string, limit int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	msgs := sess.Messages
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// CompactContext folds messages beyond the last keep into a one-line
// summary of subjects discussed, stored on the session. It returns the
// summary (existing or new).
func (s *Service) CompactContext(sessionID string, keep int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ""
	}
	if keep <= 0 || len(sess.Messages) <= keep {
		return sess.Summary
	}

	older := sess.Messages[:len(sess.Messages)-keep]
	counts := make(map[string]int)
	for _, m := range older {
		if subj := m.Metadata["subject"]; subj != "" {
			counts[subj]++
		}
	}

	var parts []string
	subjects := make([]string, 0, len(counts))
	for subj := range counts {
		subjects = append(subjects, subj)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if counts[subjects[i]] != counts[subjects[j]] {
			return counts[subjects[i]] > counts[subjects[j]]
		}
		return subjects[i] < subjects[j]
	})
	for _, subj := range subjects {
		parts = append(parts, fmt.Sprintf("%s (%d)", subj, counts[subj]))
	}

	summary := fmt.Sprintf("Стиснуто %d повідомлень.", len(older))
	if len(parts) > 0 {
		summary = fmt.Sprintf("Стиснуто %d повідомлень. Предмети: %s.", len(older), strings.Join(parts, ", "))
	}

	sess.Summary = summary
	sess.Messages = append([]Message(nil), sess.Messages[len(sess.Messages)-keep:]...)
	return summary
}

// Get returns a copy of the session, or nil if unknown.
func (s *Service) Get(sessionID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	cp := *sess
	cp.Messages = append([]Message(nil), sess.Messages...)
	cp.Plans = append([]PlanSummary(nil), sess.Plans...)
	return &cp
}

// ExportJSON serializes all sessions.
func (s *Service) ExportJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.sessions, "", "  ")
}

// Export writes the JSON snapshot to a file.
func (s *Service) Export(path string) error {
	data, err := s.ExportJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

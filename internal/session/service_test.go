package session

import (
	"strings"
	"testing"
)

func TestGetOrCreate(t *testing.T) {
	s := NewService()

	id := s.GetOrCreate("", "t-1")
	if id == "" {
		t.Fatal("expected generated session id")
	}

	same := s.GetOrCreate(id, "t-1")
	if same != id {
		t.Errorf("existing session replaced: %q != %q", same, id)
	}

	explicit := s.GetOrCreate("my-session", "t-1")
	if explicit != "my-session" {
		t.Errorf("explicit id = %q", explicit)
	}
}

func TestAppendAndHistory(t *testing.T) {
	s := NewService()
	id := s.GetOrCreate("", "t-1")

	s.AppendMessage(id, RoleUser, "перше", nil)
	s.AppendMessage(id, RoleAssistant, "друге", nil)
	s.AppendMessage(id, RoleUser, "третє", nil)

	h := s.History(id, 2)
	if len(h) != 2 {
		t.Fatalf("history = %v", h)
	}
	if h[0].Content != "друге" || h[1].Content != "третє" {
		t.Errorf("expected the two most recent in order, got %v", h)
	}
	if h[0].Timestamp.IsZero() {
		t.Error("expected timestamps")
	}
}

func TestAppendToUnknownSessionIgnored(t *testing.T) {
	s := NewService()
	s.AppendMessage("ghost", RoleUser, "привіт", nil)
	if h := s.History("ghost", 0); h != nil {
		t.Errorf("expected nil history, got %v", h)
	}
}

func TestAppendPlan(t *testing.T) {
	s := NewService()
	id := s.GetOrCreate("", "t-1")

	s.AppendPlan(id, PlanSummary{Grade: 5, Subject: "Математика", Topic: "Дроби", ReviewStatus: "ready", ReviewScore: 8.5})

	sess := s.Get(id)
	if sess == nil || len(sess.Plans) != 1 {
		t.Fatalf("session = %+v", sess)
	}
	if sess.Plans[0].GeneratedAt.IsZero() {
		t.Error("expected generated-at to be filled")
	}
}

func TestCompactContext(t *testing.T) {
	s := NewService()
	id := s.GetOrCreate("", "t-1")

	for range 3 {
		s.AppendMessage(id, RoleUser, "урок", map[string]string{"subject": "Математика"})
	}
	s.AppendMessage(id, RoleUser, "урок", map[string]string{"subject": "Історія"})
	s.AppendMessage(id, RoleUser, "останнє", nil)

	summary := s.CompactContext(id, 2)
	if !strings.Contains(summary, "Математика (3)") {
		t.Errorf("summary = %q", summary)
	}

	sess := s.Get(id)
	if len(sess.Messages) != 2 {
		t.Errorf("kept %d messages, want 2", len(sess.Messages))
	}
	if sess.Summary != summary {
		t.Error("summary should be stored on the session")
	}
}

func TestCompactContext_NoopUnderLimit(t *testing.T) {
	s := NewService()
	id := s.GetOrCreate("", "t-1")
	s.AppendMessage(id, RoleUser, "одне", nil)

	if got := s.CompactContext(id, 10); got != "" {
		t.Errorf("expected no summary, got %q", got)
	}
	if len(s.Get(id).Messages) != 1 {
		t.Error("messages must be untouched under the limit")
	}
}

func TestExportJSON(t *testing.T) {
	s := NewService()
	id := s.GetOrCreate("", "t-1")
	s.AppendMessage(id, RoleUser, "привіт", nil)

	data, err := s.ExportJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "привіт") {
		t.Error("export missing message content")
	}
}

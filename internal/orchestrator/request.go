package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pedagogue-ai/pedagogue/internal/llm"
	"github.com/pedagogue-ai/pedagogue/internal/plan"
)

// ClarificationError reports that a free-text request did not contain
// enough information to build a plan request.
type ClarificationError struct {
	MissingFields []string
}

func (e *ClarificationError) Error() string {
	return fmt.Sprintf("clarification needed: missing %s", strings.Join(e.MissingFields, ", "))
}

// Question phrases the clarification for the teacher.
func (e *ClarificationError) Question() string {
	labels := map[string]string{
		"grade":   "клас",
		"subject": "предмет",
		"topic":   "тему уроку",
	}
	var parts []string
	for _, f := range e.MissingFields {
		if l, ok := labels[f]; ok {
			parts = append(parts, l)
		}
	}
	return fmt.Sprintf("Уточніть, будь ласка: %s.", strings.Join(parts, ", "))
}

// Extraction runs cold so field values stay literal.
const extractionTemperature = 0.2

const extractionSystemPrompt = `Ти витягуєш параметри запиту на план уроку з повідомлення вчителя. Повертай лише JSON. Якщо параметра немає в тексті, залиш його порожнім (0 для чисел).`

var requestSchema = &llm.Schema{
	Name:        "lesson-request",
	Description: "Параметри запиту на план уроку",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade":    map[string]any{"type": "integer", "description": "Клас, 1-11, 0 якщо не вказано"},
			"subject":  map[string]any{"type": "string", "description": "Навчальний предмет"},
			"topic":    map[string]any{"type": "string", "description": "Тема уроку"},
			"duration": map[string]any{"type": "integer", "description": "Тривалість у хвилинах, 0 якщо не вказано"},
		},
		"required": []any{"grade", "subject", "topic"},
	},
}

type extractedRequest struct {
	Grade    int    `json:"grade"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Duration int    `json:"duration"`
}

// HandleTeacherRequest turns a free-text teacher message into a plan
// request and runs the pipeline. Missing required fields surface as a
// *ClarificationError instead of a generation attempt.
func (o *Orchestrator) HandleTeacherRequest(ctx context.Context, text, teacherID, sessionID string) (*plan.LessonPlan, error) {
	extracted, err := o.extractRequest(ctx, text)
	if err != nil {
		return nil, err
	}

	var missing []string
	if extracted.Grade < 1 || extracted.Grade > 11 {
		missing = append(missing, "grade")
	}
	if strings.TrimSpace(extracted.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(extracted.Topic) == "" {
		missing = append(missing, "topic")
	}
	if len(missing) > 0 {
		return nil, &ClarificationError{MissingFields: missing}
	}

	req := plan.Request{
		Grade:           extracted.Grade,
		Subject:         strings.TrimSpace(extracted.Subject),
		Topic:           strings.TrimSpace(extracted.Topic),
		DurationMinutes: extracted.Duration,
		TeacherID:       teacherID,
		SessionID:       sessionID,
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = plan.DefaultDurationMinutes
	}

	return o.GenerateLessonPlan(ctx, req)
}

func (o *Orchestrator) extractRequest(ctx context.Context, text string) (*extractedRequest, error) {
	ctx = llm.WithPurpose(ctx, "request-extraction")

	resp, err := o.provider.Generate(ctx, llm.Request{
		System: extractionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:      requestSchema,
		MaxTokens:   300,
		Temperature: extractionTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("extract request: %w", err)
	}

	content := normalizeExtraction(resp.Content)

	var out extractedRequest
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}
	return &out, nil
}

// normalizeExtraction tolerates models that wrap the object in a
// one-element array.
func normalizeExtraction(content json.RawMessage) json.RawMessage {
	trimmed := strings.TrimSpace(string(content))
	if !strings.HasPrefix(trimmed, "[") {
		return content
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(content, &arr); err != nil || len(arr) == 0 {
		return content
	}
	return arr[0]
}

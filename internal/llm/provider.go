package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single seam between the lesson-plan components and a
// concrete LLM vendor. Every generation in the pipeline goes through
// exactly one Generate call.
type Provider interface {
	// Generate sends one prompt and returns the model output. When the
	// request carries a Schema, the provider uses the vendor's
	// structured-output mechanism and Content is the validated JSON
	// object. Without a Schema, Content is the raw text wrapped as a
	// JSON string.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	// System sets the model's role, e.g. the Ukrainian teacher persona
	// shared by the content components.
	System string

	// Messages is the conversation. Plan components send a single user
	// message; only the free-text entry point builds longer histories.
	Messages []Message

	// Schema, when set, constrains the response to a JSON structure.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Each plan component fixes its own value;
	// zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure a response must match.
type Schema struct {
	// Name labels the schema for the vendor API (tool name for
	// Anthropic, response-schema name for OpenAI). Kebab-case, e.g.
	// "lesson-request".
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model output for one Request.
type Response struct {
	// Content holds validated JSON when the request had a Schema,
	// otherwise the raw text as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is normalized across vendors: "end", "max_tokens",
	// "error".
	StopReason string
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

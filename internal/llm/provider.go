// Package llm abstracts over hosted language-model APIs. Callers
// describe one generation with a Request and get back schema-validated
// JSON; which vendor serves it is a configuration detail.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is one configured model backend.
type Provider interface {
	// Generate runs a single completion. When req.Schema is set the
	// returned Content is JSON already validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the concrete model this provider targets.
	ModelID() string
}

// Request is everything one generation needs.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the turn history. Typeprint only ever sends a
	// single user turn, but the slice keeps providers generic.
	Messages []Message

	// Schema, when non-nil, switches the provider to its native
	// structured-output mode and gates the response through
	// validation. When nil, Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape a response must take. Name
// doubles as the tool/schema identifier on the wire, kebab-case.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is one completed generation.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text wrapped as a JSON string.
	Content json.RawMessage

	// Usage is the token count the provider reported.
	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason normalized across vendors: "end", "max_tokens",
	// "error".
	StopReason string
}

// Usage is per-call token accounting.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

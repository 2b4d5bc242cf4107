package interpret

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/typeprint/internal/llm"
)

// Service generates result interpretations through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an interpretation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type interpretationOutput struct {
	Headline    string   `json:"headline"`
	Portrait    string   `json:"portrait"`
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growth_areas"`
	ClarityNote string   `json:"clarity_note"`
}

// Generate produces an interpretation for a scored result. Blocking;
// callers on the UI thread wrap it in a command.
func (s *Service) Generate(ctx context.Context, input Input) (*Interpretation, error) {
	if input.Result == nil {
		return nil, fmt.Errorf("interpret: nil result")
	}

	ctx = llm.WithPurpose(ctx, "interpretation")

	req := llm.Request{
		System: interpretSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInterpretUserMessage(input)},
		},
		Schema:      InterpretationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("interpretation generation: %w", err)
	}

	var out interpretationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse interpretation response: %w", err)
	}

	return &Interpretation{
		TypeCode:    input.Result.TypeCode,
		Headline:    out.Headline,
		Portrait:    out.Portrait,
		Strengths:   out.Strengths,
		GrowthAreas: out.GrowthAreas,
		ClarityNote: out.ClarityNote,
		GeneratedAt: time.Now(),
	}, nil
}

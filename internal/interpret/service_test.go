package interpret

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/llm"
	"github.com/abhisek/typeprint/internal/scoring"
)

func scoredInput(t *testing.T, answers scoring.AnswerSet) Input {
	t.Helper()
	res, err := scoring.NewEngine(itembank.Default()).Score(answers)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	return Input{
		Respondent: "alex",
		Result:     res,
		Answered:   len(answers),
		Omitted:    93 - len(answers),
	}
}

func cannedInterpretation() llm.MockResponse {
	content, _ := json.Marshal(map[string]any{
		"headline":     "A quiet idealist near every midpoint",
		"portrait":     "You lean inward and toward possibility, though none of these leanings is strong.",
		"strengths":    []string{"listens before speaking", "open to revising views"},
		"growth_areas": []string{"committing to decisions sooner"},
		"clarity_note": "All four preferences are slight; the opposite letters may fit on another day.",
	})
	return llm.MockResponse{Content: json.RawMessage(content)}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(cannedInterpretation())
	svc := NewService(mock, DefaultConfig())

	interp, err := svc.Generate(context.Background(), scoredInput(t, scoring.AnswerSet{}))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if interp.TypeCode != "INFP" {
		t.Errorf("type code = %s, want INFP", interp.TypeCode)
	}
	if interp.Headline == "" || interp.Portrait == "" {
		t.Error("expected non-empty headline and portrait")
	}
	if len(interp.Strengths) != 2 {
		t.Errorf("strengths = %d, want 2", len(interp.Strengths))
	}
	if interp.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
}

func TestGeneratePromptContent(t *testing.T) {
	mock := llm.NewMockProvider(cannedInterpretation())
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), scoredInput(t, scoring.AnswerSet{})); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != InterpretationSchema {
		t.Error("expected interpretation schema on the request")
	}

	prompt := req.Messages[0].Content
	for _, want := range []string{
		"Reported type: INFP",
		"Slight-clarity preferences: I, N, F, P",
		"93 of 93 questions were left unanswered",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGeneratePromptOmitsClarityWarningWhenClear(t *testing.T) {
	bank := itembank.Default()
	answers := scoring.AnswerSet{}
	for _, it := range bank.Items() {
		if it.OptionA.Positive {
			answers[it.ID] = it.OptionA.Key
		} else {
			answers[it.ID] = it.OptionB.Key
		}
	}

	mock := llm.NewMockProvider(cannedInterpretation())
	svc := NewService(mock, DefaultConfig())
	if _, err := svc.Generate(context.Background(), scoredInput(t, answers)); err != nil {
		t.Fatalf("generate: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "Slight-clarity preferences") {
		t.Error("fully answered, all-clear result should not flag slight clarities")
	}
	if strings.Contains(prompt, "left unanswered") {
		t.Error("no omissions expected in prompt")
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → unavailable
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), scoredInput(t, scoring.AnswerSet{})); err == nil {
		t.Fatal("expected error when provider is unavailable")
	}
}

func TestGenerateNilResult(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, err := svc.Generate(context.Background(), Input{}); err == nil {
		t.Fatal("expected error for nil result")
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), scoredInput(t, scoring.AnswerSet{})); err == nil {
		t.Fatal("expected error for malformed response")
	}
}

package results

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/typeprint/internal/interpret"
	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/llm"
	"github.com/abhisek/typeprint/internal/router"
	"github.com/abhisek/typeprint/internal/scoring"
	sess "github.com/abhisek/typeprint/internal/session"
)

func testOutcome(t *testing.T) *sess.Outcome {
	t.Helper()
	s := sess.New(itembank.Default(), "alex")
	outcome, err := s.Complete(scoring.NewEngine(itembank.Default()))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	return outcome
}

func testInterpreter() *interpret.Service {
	content, _ := json.Marshal(map[string]any{
		"headline":     "A quiet idealist near every midpoint",
		"portrait":     "You lean inward, though none of these leanings is strong.",
		"strengths":    []string{"listens before speaking"},
		"growth_areas": []string{"committing to decisions sooner"},
		"clarity_note": "All four preferences are slight.",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	return interpret.NewService(mock, interpret.DefaultConfig())
}

func TestResultsScreen_Title(t *testing.T) {
	s := New(testOutcome(t), nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_ViewWithoutInterpreter(t *testing.T) {
	s := New(testOutcome(t), nil)
	if cmd := s.Init(); cmd != nil {
		t.Error("expected no init command without an interpreter")
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "INFP") {
		t.Errorf("expected type code in view:\n%s", view)
	}
	if strings.Contains(view, "interpretation") {
		t.Error("expected no interpretation section without an interpreter")
	}
}

func TestResultsScreen_Interpretation(t *testing.T) {
	s := New(testOutcome(t), testInterpreter())

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected an init command with an interpreter")
	}
	if !s.generating {
		t.Error("expected generating state")
	}

	msg := cmd()
	ready, ok := msg.(interpretReadyMsg)
	if !ok {
		t.Fatalf("expected interpretReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("generate: %v", ready.Err)
	}

	scr, _ := s.Update(ready)
	rs := scr.(*ResultsScreen)
	view := rs.View(100, 40)
	if !strings.Contains(view, "quiet idealist") {
		t.Errorf("expected interpretation headline in view:\n%s", view)
	}
}

func TestResultsScreen_InterpretationError(t *testing.T) {
	// Empty mock queue makes the provider unavailable.
	svc := interpret.NewService(llm.NewMockProvider(), interpret.DefaultConfig())
	s := New(testOutcome(t), svc)

	msg := s.Init()()
	ready := msg.(interpretReadyMsg)
	if ready.Err == nil {
		t.Fatal("expected generation error")
	}

	scr, _ := s.Update(ready)
	view := scr.(*ResultsScreen).View(100, 40)
	if !strings.Contains(view, "Interpretation unavailable") {
		t.Errorf("expected unavailable note in view:\n%s", view)
	}
}

func TestResultsScreen_EscPops(t *testing.T) {
	s := New(testOutcome(t), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

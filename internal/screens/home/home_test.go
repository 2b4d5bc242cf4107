package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/router"
	"github.com/abhisek/typeprint/internal/screen"
	"github.com/abhisek/typeprint/internal/screens/questionnaire"
	"github.com/abhisek/typeprint/internal/scoring"
	"github.com/abhisek/typeprint/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct{}

func (mockEventRepo) AppendAssessment(context.Context, store.AssessmentEventData) error { return nil }
func (mockEventRepo) AppendResponse(context.Context, store.ResponseEventData) error     { return nil }
func (mockEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error { return nil }
func (mockEventRepo) ResponseCount(context.Context, string) (int, error)                { return 0, nil }

// mockResultRepo implements store.ResultRepo for testing.
type mockResultRepo struct {
	latest *store.ResultRecord
}

func (m *mockResultRepo) Save(_ context.Context, rec *store.ResultRecord) error {
	m.latest = rec
	return nil
}
func (m *mockResultRepo) Latest(context.Context) (*store.ResultRecord, error) {
	return m.latest, nil
}
func (m *mockResultRepo) History(context.Context, int) ([]*store.ResultRecord, error) {
	if m.latest == nil {
		return nil, nil
	}
	return []*store.ResultRecord{m.latest}, nil
}
func (m *mockResultRepo) Prune(context.Context, int) error { return nil }

func testHome() *HomeScreen {
	return New(itembank.Default(), scoring.NewEngine(itembank.Default()), mockEventRepo{}, &mockResultRepo{}, nil)
}

func TestHomeScreen_Title(t *testing.T) {
	h := testHome()
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want %q", h.Title(), "Home")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := testHome()
	view := h.View(100, 30)
	if !strings.Contains(view, "T Y P E P R I N T") {
		t.Errorf("expected banner in view:\n%s", view)
	}
	if !strings.Contains(view, "Start assessment") {
		t.Errorf("expected menu in view:\n%s", view)
	}
}

func TestHomeScreen_StartOpensNameEntry(t *testing.T) {
	h := testHome()

	var scr screen.Screen = h
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	hs := scr.(*HomeScreen)

	if !hs.naming {
		t.Fatal("expected name entry after selecting start")
	}
	view := hs.View(100, 30)
	if !strings.Contains(view, "Who is taking the questionnaire?") {
		t.Errorf("expected name prompt:\n%s", view)
	}
}

func TestHomeScreen_NameEntryStartsQuestionnaire(t *testing.T) {
	h := testHome()

	var scr screen.Screen = h
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr, cmd := scr.(*HomeScreen).Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	hs := scr.(*HomeScreen)

	if hs.naming {
		t.Error("expected name entry to close")
	}
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*questionnaire.QuestionnaireScreen); !ok {
		t.Errorf("expected questionnaire screen, got %T", push.Screen)
	}
}

func TestHomeScreen_NameEntryEscCancels(t *testing.T) {
	h := testHome()

	var scr screen.Screen = h
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr, _ = scr.(*HomeScreen).Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	hs := scr.(*HomeScreen)

	if hs.naming {
		t.Error("expected esc to cancel name entry")
	}
}

func TestHomeScreen_PastResultsPushesHistory(t *testing.T) {
	h := testHome()

	var scr screen.Screen = h
	scr, _ = scr.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	_, cmd := scr.(*HomeScreen).Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}

func TestHomeScreen_LatestResultShown(t *testing.T) {
	repo := &mockResultRepo{}
	res, err := scoring.NewEngine(itembank.Default()).Score(scoring.AnswerSet{})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	_ = repo.Save(context.Background(), &store.ResultRecord{Result: res, Respondent: "alex"})

	h := New(itembank.Default(), scoring.NewEngine(itembank.Default()), mockEventRepo{}, repo, nil)
	msg := h.Init()()
	scr, _ := h.Update(msg)
	view := scr.(*HomeScreen).View(100, 30)
	if !strings.Contains(view, "Last result: INFP") {
		t.Errorf("expected latest result line:\n%s", view)
	}
}

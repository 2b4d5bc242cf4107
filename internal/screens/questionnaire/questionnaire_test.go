package questionnaire

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/router"
	"github.com/abhisek/typeprint/internal/screen"
	"github.com/abhisek/typeprint/internal/scoring"
	"github.com/abhisek/typeprint/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	assessments []store.AssessmentEventData
	responses   []store.ResponseEventData
}

func (m *mockEventRepo) AppendAssessment(_ context.Context, data store.AssessmentEventData) error {
	m.assessments = append(m.assessments, data)
	return nil
}
func (m *mockEventRepo) AppendResponse(_ context.Context, data store.ResponseEventData) error {
	m.responses = append(m.responses, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) ResponseCount(_ context.Context, _ string) (int, error) {
	return len(m.responses), nil
}

// mockResultRepo implements store.ResultRepo for testing.
type mockResultRepo struct {
	saved []*store.ResultRecord
}

func (m *mockResultRepo) Save(_ context.Context, rec *store.ResultRecord) error {
	m.saved = append(m.saved, rec)
	return nil
}
func (m *mockResultRepo) Latest(_ context.Context) (*store.ResultRecord, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}
func (m *mockResultRepo) History(_ context.Context, _ int) ([]*store.ResultRecord, error) {
	return m.saved, nil
}
func (m *mockResultRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen() (*QuestionnaireScreen, *mockEventRepo, *mockResultRepo) {
	eventRepo := &mockEventRepo{}
	resultRepo := &mockResultRepo{}
	s := New("alex", itembank.Default(), scoring.NewEngine(itembank.Default()), eventRepo, resultRepo, nil)
	return s, eventRepo, resultRepo
}

func TestQuestionnaireScreen_Title(t *testing.T) {
	s, _, _ := testScreen()
	if s.Title() != "Questionnaire" {
		t.Errorf("Title = %q, want %q", s.Title(), "Questionnaire")
	}
}

func TestQuestionnaireScreen_InitLogsStart(t *testing.T) {
	s, eventRepo, _ := testScreen()
	s.Init()

	if len(eventRepo.assessments) != 1 {
		t.Fatalf("assessment events = %d, want 1", len(eventRepo.assessments))
	}
	if eventRepo.assessments[0].Action != "start" {
		t.Errorf("action = %q, want start", eventRepo.assessments[0].Action)
	}
	if eventRepo.assessments[0].Respondent != "alex" {
		t.Errorf("respondent = %q, want alex", eventRepo.assessments[0].Respondent)
	}
}

func TestQuestionnaireScreen_AnswerAdvances(t *testing.T) {
	s, eventRepo, _ := testScreen()
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestionnaireScreen)

	if qs.state.Position() != 2 {
		t.Errorf("position = %d, want 2", qs.state.Position())
	}
	if len(eventRepo.responses) != 1 {
		t.Fatalf("response events = %d, want 1", len(eventRepo.responses))
	}
	if eventRepo.responses[0].Action != "answer" {
		t.Errorf("action = %q, want answer", eventRepo.responses[0].Action)
	}
	if eventRepo.responses[0].ChoiceKey != "A" {
		t.Errorf("choice = %q, want A (default selection)", eventRepo.responses[0].ChoiceKey)
	}
}

func TestQuestionnaireScreen_SelectBThenAnswer(t *testing.T) {
	s, eventRepo, _ := testScreen()
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('b'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	_ = scr

	if eventRepo.responses[0].ChoiceKey != "B" {
		t.Errorf("choice = %q, want B", eventRepo.responses[0].ChoiceKey)
	}
}

func TestQuestionnaireScreen_SkipLogsOmission(t *testing.T) {
	s, eventRepo, _ := testScreen()
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	qs := scr.(*QuestionnaireScreen)

	if qs.state.Position() != 2 {
		t.Errorf("position = %d, want 2", qs.state.Position())
	}
	if qs.state.AnsweredCount() != 0 {
		t.Errorf("answered = %d, want 0", qs.state.AnsweredCount())
	}
	if eventRepo.responses[0].Action != "skip" {
		t.Errorf("action = %q, want skip", eventRepo.responses[0].Action)
	}
	if eventRepo.responses[0].ChoiceKey != "" {
		t.Errorf("choice = %q, want empty on skip", eventRepo.responses[0].ChoiceKey)
	}
}

func TestQuestionnaireScreen_BackRevisits(t *testing.T) {
	s, _, _ := testScreen()
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(specialKey(tea.KeyBackspace))
	qs := scr.(*QuestionnaireScreen)

	if qs.state.Position() != 1 {
		t.Errorf("position = %d, want 1 after back", qs.state.Position())
	}
	// Earlier answer stays selected on revisit.
	if qs.choice.ChoiceKey() != "A" {
		t.Errorf("preselect = %q, want A", qs.choice.ChoiceKey())
	}
}

func TestQuestionnaireScreen_QuitConfirm(t *testing.T) {
	s, eventRepo, _ := testScreen()
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuestionnaireScreen)
	if !qs.confirmingQuit {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuestionnaireScreen)
	if qs.confirmingQuit {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = qs.Update(specialKey(tea.KeyEscape))
	qs = scr.(*QuestionnaireScreen)
	_, cmd := qs.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a pop command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}

	last := eventRepo.assessments[len(eventRepo.assessments)-1]
	if last.Action != "abandon" {
		t.Errorf("action = %q, want abandon", last.Action)
	}
}

func TestQuestionnaireScreen_FullWalkThrough(t *testing.T) {
	s, eventRepo, resultRepo := testScreen()
	s.Init()

	var scr screen.Screen = s
	for i := 0; i < 93; i++ {
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
	}
	qs := scr.(*QuestionnaireScreen)

	if !qs.confirmingFinish {
		t.Fatal("expected finish confirmation after last question")
	}

	scr, cmd := qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuestionnaireScreen)
	if !qs.persisting {
		t.Error("expected persisting state")
	}
	if cmd == nil {
		t.Fatal("expected a finish command")
	}

	msg := cmd()
	ready, ok := msg.(outcomeReadyMsg)
	if !ok {
		t.Fatalf("expected outcomeReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("finish: %v", ready.Err)
	}
	if ready.Outcome.Answered != 93 {
		t.Errorf("answered = %d, want 93", ready.Outcome.Answered)
	}

	if len(resultRepo.saved) != 1 {
		t.Fatalf("saved results = %d, want 1", len(resultRepo.saved))
	}
	if resultRepo.saved[0].Result.TypeCode == "" {
		t.Error("expected a type code on the saved result")
	}

	last := eventRepo.assessments[len(eventRepo.assessments)-1]
	if last.Action != "complete" {
		t.Errorf("action = %q, want complete", last.Action)
	}
	if last.TypeCode != ready.Outcome.Result.TypeCode {
		t.Errorf("event type code = %q, want %q", last.TypeCode, ready.Outcome.Result.TypeCode)
	}

	// The ready message swaps in the results screen.
	_, cmd = qs.Update(ready)
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
}

func TestQuestionnaireScreen_FinishConfirmBack(t *testing.T) {
	s, _, _ := testScreen()
	s.Init()

	var scr screen.Screen = s
	for i := 0; i < 93; i++ {
		scr, _ = scr.Update(keyPress('s'))
	}
	qs := scr.(*QuestionnaireScreen)
	if !qs.confirmingFinish {
		t.Fatal("expected finish confirmation")
	}

	scr, _ = qs.Update(specialKey(tea.KeyBackspace))
	qs = scr.(*QuestionnaireScreen)
	if qs.confirmingFinish {
		t.Error("expected to return to the questions")
	}
	if qs.state.Position() != 93 {
		t.Errorf("position = %d, want 93", qs.state.Position())
	}
}

func TestQuestionnaireScreen_View(t *testing.T) {
	s, _, _ := testScreen()
	s.Init()

	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty question view")
	}

	s.confirmingQuit = true
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty quit confirm view")
	}
	s.confirmingQuit = false

	s.errMsg = "boom"
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty error view")
	}
}

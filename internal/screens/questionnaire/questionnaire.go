package questionnaire

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/typeprint/internal/interpret"
	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/router"
	"github.com/abhisek/typeprint/internal/screen"
	"github.com/abhisek/typeprint/internal/screens/results"
	"github.com/abhisek/typeprint/internal/scoring"
	sess "github.com/abhisek/typeprint/internal/session"
	"github.com/abhisek/typeprint/internal/store"
	"github.com/abhisek/typeprint/internal/ui/components"
	"github.com/abhisek/typeprint/internal/ui/layout"
)

// QuestionnaireScreen walks the respondent through all 93 items.
type QuestionnaireScreen struct {
	state       *sess.Session
	engine      *scoring.Engine
	eventRepo   store.EventRepo
	resultRepo  store.ResultRepo
	interpreter *interpret.Service

	choice      components.ChoicePair
	itemShownAt time.Time

	confirmingFinish bool
	confirmingQuit   bool
	persisting       bool
	errMsg           string
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)

// New creates a questionnaire screen for one respondent.
func New(respondent string, bank *itembank.Bank, engine *scoring.Engine, eventRepo store.EventRepo, resultRepo store.ResultRepo, interpreter *interpret.Service) *QuestionnaireScreen {
	s := &QuestionnaireScreen{
		state:       sess.New(bank, respondent),
		engine:      engine,
		eventRepo:   eventRepo,
		resultRepo:  resultRepo,
		interpreter: interpreter,
	}
	s.syncChoice()
	return s
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendAssessment(context.Background(), store.AssessmentEventData{
			SessionID:  s.state.ID,
			Action:     "start",
			Respondent: s.state.Respondent,
		})
	}
	s.itemShownAt = time.Now()
	return nil
}

func (s *QuestionnaireScreen) Title() string {
	return "Questionnaire"
}

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	if s.confirmingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.confirmingFinish {
		return []layout.KeyHint{
			{Key: "Enter", Description: "See results"},
			{Key: "Backspace", Description: "Review answers"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "S", Description: "Skip"},
		{Key: "Backspace", Description: "Previous"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case outcomeReadyMsg:
		return s.handleOutcomeReady(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuestionnaireScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.persisting {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.confirmingQuit {
		switch key {
		case "y", "Y":
			s.logAbandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmingQuit = false
		}
		return s, nil
	}

	// Finish confirmation.
	if s.confirmingFinish {
		switch key {
		case "enter", "y", "Y":
			s.persisting = true
			return s, s.finish()
		case "backspace", "esc", "n", "N":
			s.confirmingFinish = false
			s.state.Back()
			s.syncChoice()
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmingQuit = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	case "s", "S":
		if it, ok := s.state.Current(); ok {
			s.logResponse(it, "skip", "")
		}
		s.state.Skip()
		s.advance()
		return s, nil
	case "backspace":
		s.state.Back()
		s.syncChoice()
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// submitAnswer records the selected option and advances.
func (s *QuestionnaireScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	it, ok := s.state.Current()
	if !ok {
		return s, nil
	}
	choiceKey := s.choice.ChoiceKey()
	if err := s.state.Answer(choiceKey); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.logResponse(it, "answer", choiceKey)
	s.advance()
	return s, nil
}

// advance moves to the next question or into the finish confirmation.
func (s *QuestionnaireScreen) advance() {
	if s.state.Done() {
		s.confirmingFinish = true
		return
	}
	s.syncChoice()
}

// syncChoice rebuilds the selector for the current item, preselecting
// any answer recorded on an earlier visit.
func (s *QuestionnaireScreen) syncChoice() {
	it, ok := s.state.Current()
	if !ok {
		return
	}
	preselect, _ := s.state.AnswerFor(it.ID)
	s.choice = components.NewChoicePair(it.Stem, it.OptionA.Text, it.OptionB.Text, preselect)
	s.itemShownAt = time.Now()
}

func (s *QuestionnaireScreen) logResponse(it itembank.Item, action, choiceKey string) {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendResponse(context.Background(), store.ResponseEventData{
		SessionID: s.state.ID,
		ItemID:    it.ID,
		Dichotomy: string(it.Dichotomy),
		Action:    action,
		ChoiceKey: choiceKey,
		TimeMs:    int(time.Since(s.itemShownAt).Milliseconds()),
	})
}

func (s *QuestionnaireScreen) logAbandon() {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendAssessment(context.Background(), store.AssessmentEventData{
		SessionID:  s.state.ID,
		Action:     "abandon",
		Respondent: s.state.Respondent,
		Answered:   s.state.AnsweredCount(),
		Omitted:    s.state.OmittedCount(),
	})
}

// finish scores the answers, persists the outcome, and hands the
// result to the results screen.
func (s *QuestionnaireScreen) finish() tea.Cmd {
	state := s.state
	return func() tea.Msg {
		outcome, err := state.Complete(s.engine)
		if err != nil {
			return outcomeReadyMsg{Err: err}
		}

		ctx := context.Background()
		if s.eventRepo != nil {
			_ = s.eventRepo.AppendAssessment(ctx, store.AssessmentEventData{
				SessionID:    outcome.SessionID,
				Action:       "complete",
				Respondent:   outcome.Respondent,
				TypeCode:     outcome.Result.TypeCode,
				Answered:     outcome.Answered,
				Omitted:      outcome.Omitted,
				DurationSecs: int(outcome.Duration.Seconds()),
			})
		}
		if s.resultRepo != nil {
			_ = s.resultRepo.Save(ctx, &store.ResultRecord{
				SessionID:    outcome.SessionID,
				Respondent:   outcome.Respondent,
				Result:       outcome.Result,
				Answered:     outcome.Answered,
				Omitted:      outcome.Omitted,
				DurationSecs: int(outcome.Duration.Seconds()),
				FinishedAt:   outcome.FinishedAt,
			})
		}

		return outcomeReadyMsg{Outcome: outcome}
	}
}

func (s *QuestionnaireScreen) handleOutcomeReady(msg outcomeReadyMsg) (screen.Screen, tea.Cmd) {
	s.persisting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	outcome := msg.Outcome
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.New(outcome, s.interpreter),
		}
	}
}

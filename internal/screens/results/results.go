package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/typeprint/internal/interpret"
	"github.com/abhisek/typeprint/internal/report"
	"github.com/abhisek/typeprint/internal/router"
	"github.com/abhisek/typeprint/internal/screen"
	sess "github.com/abhisek/typeprint/internal/session"
	"github.com/abhisek/typeprint/internal/ui/layout"
	"github.com/abhisek/typeprint/internal/ui/theme"
)

// interpretReadyMsg is sent when interpretation generation finishes.
type interpretReadyMsg struct {
	Interp *interpret.Interpretation
	Err    error
}

// ResultsScreen shows a scored assessment, with an LLM interpretation
// generated in the background when a provider is configured.
type ResultsScreen struct {
	outcome     *sess.Outcome
	interpreter *interpret.Service

	interp     *interpret.Interpretation
	interpErr  error
	generating bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. interpreter may be nil, in which case
// the interpretation section is omitted entirely.
func New(outcome *sess.Outcome, interpreter *interpret.Service) *ResultsScreen {
	return &ResultsScreen{
		outcome:     outcome,
		interpreter: interpreter,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.interpreter == nil {
		return nil
	}
	s.generating = true
	return s.generateInterpretation()
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case interpretReadyMsg:
		s.generating = false
		s.interp = msg.Interp
		s.interpErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// generateInterpretation calls the LLM off the UI thread.
func (s *ResultsScreen) generateInterpretation() tea.Cmd {
	outcome := s.outcome
	return func() tea.Msg {
		interp, err := s.interpreter.Generate(context.Background(), interpret.Input{
			Respondent: outcome.Respondent,
			Result:     outcome.Result,
			Answered:   outcome.Answered,
			Omitted:    outcome.Omitted,
		})
		return interpretReadyMsg{Interp: interp, Err: err}
	}
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	rendered := report.Render(s.outcome)
	styled := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(rendered)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styled))

	if section := s.renderInterpretation(width); section != "" {
		b.WriteString("\n\n")
		b.WriteString(section)
	}

	return b.String()
}

func (s *ResultsScreen) renderInterpretation(width int) string {
	if s.interpreter == nil {
		return ""
	}
	if s.generating {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Writing your interpretation...")
	}
	if s.interpErr != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(fmt.Sprintf("Interpretation unavailable: %s", s.interpErr))
	}
	if s.interp == nil {
		return ""
	}

	bodyWidth := width - 8
	if bodyWidth > 70 {
		bodyWidth = 70
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(s.interp.Headline))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(bodyWidth).
		Foreground(theme.Text).
		Render(s.interp.Portrait))
	b.WriteString("\n\n")

	if len(s.interp.Strengths) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Likely strengths"))
		b.WriteString("\n")
		for _, st := range s.interp.Strengths {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  • " + st))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(s.interp.GrowthAreas) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Growth areas"))
		b.WriteString("\n")
		for _, g := range s.interp.GrowthAreas {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  • " + g))
			b.WriteString("\n")
		}
	}
	if s.interp.ClarityNote != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(bodyWidth).
			Foreground(theme.TextDim).
			Italic(true).
			Render(s.interp.ClarityNote))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/typeprint/internal/session"
	"github.com/abhisek/typeprint/internal/ui/components"
	"github.com/abhisek/typeprint/internal/ui/theme"
)

func (s *QuestionnaireScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.persisting {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Scoring your answers...")
	}
	if s.confirmingQuit {
		return renderQuitConfirm(width)
	}
	if s.confirmingFinish {
		return s.renderFinishConfirm(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *QuestionnaireScreen) renderQuestionView(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.state.Position(), s.state.Len()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d answered  %d skipped", s.state.AnsweredCount(), s.state.OmittedCount()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	percent := float64(s.state.Position()-1) / float64(s.state.Len())
	bar := components.NewProgressBar("", percent, false, width-8)
	b.WriteString("    " + bar.View())
	b.WriteString("\n\n\n")

	choiceView := s.choice.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choiceView))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nPick whichever fits you better. There are no right answers."))

	return b.String()
}

// renderFinishConfirm renders the end-of-questionnaire confirmation.
func (s *QuestionnaireScreen) renderFinishConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("That was the last question."))
	b.WriteString("\n\n")

	omitted := s.state.OmittedCount()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Answered %d of %d. Skipped %d.", s.state.AnsweredCount(), s.state.Len(), omitted)))
	b.WriteString("\n\n")

	if omitted >= sess.OmissionWarningThreshold {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("%d questions were skipped. The result may be unreliable.", omitted)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("You can go back and answer the ones you skipped."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Enter] See my results"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[Backspace] Review my answers"))

	return b.String()
}

// renderQuitConfirm renders the abandon confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave the questionnaire?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers from this sitting will not be scored."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

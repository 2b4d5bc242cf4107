package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/typeprint/internal/ui/theme"
)

// ChoicePair is a forced-choice selector between two phrases. Neither
// option is right or wrong; the selector only records a leaning.
type ChoicePair struct {
	Stem     string
	OptionA  string
	OptionB  string
	Selected int // 0 = A, 1 = B
}

// NewChoicePair creates a selector for one item. If preselect is "A"
// or "B" the cursor starts on that option (used when revisiting an
// already answered item).
func NewChoicePair(stem, optionA, optionB, preselect string) ChoicePair {
	selected := 0
	if preselect == "B" {
		selected = 1
	}
	return ChoicePair{
		Stem:     stem,
		OptionA:  optionA,
		OptionB:  optionB,
		Selected: selected,
	}
}

// Init returns nil.
func (c ChoicePair) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (c ChoicePair) Update(msg tea.Msg) (ChoicePair, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k", "left", "h":
		c.Selected = 0
	case "down", "j", "right", "l":
		c.Selected = 1
	case "a", "A":
		c.Selected = 0
	case "b", "B":
		c.Selected = 1
	case "tab":
		c.Selected = 1 - c.Selected
	}

	return c, nil
}

// ChoiceKey returns the answer key for the option under the cursor.
func (c ChoicePair) ChoiceKey() string {
	if c.Selected == 1 {
		return "B"
	}
	return "A"
}

// View renders the stem and both options.
func (c ChoicePair) View() string {
	s := ""
	if c.Stem != "" {
		s += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Stem) + "\n\n"
	}

	options := []string{c.OptionA, c.OptionB}
	labels := []string{"A", "B"}

	for i, opt := range options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, labels[i], opt)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/typeprint/internal/interpret"
	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/router"
	"github.com/abhisek/typeprint/internal/screen"
	"github.com/abhisek/typeprint/internal/screens/history"
	"github.com/abhisek/typeprint/internal/screens/questionnaire"
	"github.com/abhisek/typeprint/internal/scoring"
	"github.com/abhisek/typeprint/internal/store"
	"github.com/abhisek/typeprint/internal/ui/components"
	"github.com/abhisek/typeprint/internal/ui/layout"
	"github.com/abhisek/typeprint/internal/ui/theme"
)

type latestLoadedMsg struct {
	Record *store.ResultRecord
	Err    error
}

// HomeScreen is the entry screen: start an assessment or browse
// past results.
type HomeScreen struct {
	bank        *itembank.Bank
	engine      *scoring.Engine
	eventRepo   store.EventRepo
	resultRepo  store.ResultRepo
	interpreter *interpret.Service

	menu       components.Menu
	naming     bool
	nameInput  components.TextInput
	lastResult *store.ResultRecord
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies.
func New(bank *itembank.Bank, engine *scoring.Engine, eventRepo store.EventRepo, resultRepo store.ResultRepo, interpreter *interpret.Service) *HomeScreen {
	h := &HomeScreen{
		bank:        bank,
		engine:      engine,
		eventRepo:   eventRepo,
		resultRepo:  resultRepo,
		interpreter: interpreter,
	}

	items := []components.MenuItem{
		{Label: "Start assessment", Action: func() tea.Cmd {
			h.naming = true
			h.nameInput = components.NewTextInput("Your name (optional)", 40)
			return h.nameInput.Init()
		}},
		{Label: "Past results", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(resultRepo)}
			}
		}, Disabled: resultRepo == nil},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.resultRepo == nil {
		return nil
	}
	return func() tea.Msg {
		rec, err := h.resultRepo.Latest(context.Background())
		return latestLoadedMsg{Record: rec, Err: err}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.naming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case latestLoadedMsg:
		if msg.Err == nil {
			h.lastResult = msg.Record
		}
		return h, nil

	case tea.KeyMsg:
		if h.naming {
			switch msg.String() {
			case "esc":
				h.naming = false
				return h, nil
			case "enter":
				name := strings.TrimSpace(h.nameInput.Value())
				h.naming = false
				return h, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: questionnaire.New(name, h.bank, h.engine, h.eventRepo, h.resultRepo, h.interpreter),
					}
				}
			}
			var cmd tea.Cmd
			h.nameInput, cmd = h.nameInput.Update(msg)
			return h, cmd
		}
	}

	if h.naming {
		var cmd tea.Cmd
		h.nameInput, cmd = h.nameInput.Update(msg)
		return h, cmd
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.naming {
		return h.renderNaming(width)
	}

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("T Y P E P R I N T")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("93 questions. Two choices each. No right answers.")
	sections = append(sections, title+"\n"+subtitle)

	if h.lastResult != nil {
		who := h.lastResult.Respondent
		if who == "" {
			who = "anonymous"
		}
		last := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Last result: %s for %s on %s",
				h.lastResult.Result.TypeCode, who,
				h.lastResult.FinishedAt.Format("Jan 02, 2006")))
		sections = append(sections, last)
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderNaming(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Who is taking the questionnaire?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.nameInput.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Leave blank to stay anonymous. Press Enter to begin."))
	return b.String()
}

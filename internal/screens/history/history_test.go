package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/router"
	"github.com/abhisek/typeprint/internal/scoring"
	"github.com/abhisek/typeprint/internal/store"
)

// mockResultRepo implements store.ResultRepo for testing.
type mockResultRepo struct {
	records []*store.ResultRecord
	err     error
}

func (m *mockResultRepo) Save(_ context.Context, rec *store.ResultRecord) error {
	m.records = append(m.records, rec)
	return nil
}
func (m *mockResultRepo) Latest(_ context.Context) (*store.ResultRecord, error) {
	if len(m.records) == 0 {
		return nil, nil
	}
	return m.records[0], nil
}
func (m *mockResultRepo) History(_ context.Context, _ int) ([]*store.ResultRecord, error) {
	return m.records, m.err
}
func (m *mockResultRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func testRecord(t *testing.T, respondent string) *store.ResultRecord {
	t.Helper()
	res, err := scoring.NewEngine(itembank.Default()).Score(scoring.AnswerSet{})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	return &store.ResultRecord{
		SessionID:  "s-" + respondent,
		Respondent: respondent,
		Result:     res,
		Answered:   0,
		Omitted:    93,
		FinishedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
	}
}

func loadedScreen(t *testing.T, repo *mockResultRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	msg := s.Init()()
	scr, _ := s.Update(msg)
	return scr.(*HistoryScreen)
}

func TestHistoryScreen_Title(t *testing.T) {
	s := New(&mockResultRepo{})
	if s.Title() != "Past Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Past Results")
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := loadedScreen(t, &mockResultRepo{})
	view := s.View(100, 24)
	if !strings.Contains(view, "No results yet") {
		t.Errorf("expected empty-state message:\n%s", view)
	}
}

func TestHistoryScreen_ListsRecords(t *testing.T) {
	repo := &mockResultRepo{records: []*store.ResultRecord{
		testRecord(t, "alex"),
		testRecord(t, ""),
	}}
	s := loadedScreen(t, repo)

	view := s.View(100, 24)
	if !strings.Contains(view, "alex") {
		t.Errorf("expected respondent name in view:\n%s", view)
	}
	if !strings.Contains(view, "anonymous") {
		t.Errorf("expected anonymous placeholder in view:\n%s", view)
	}
	if !strings.Contains(view, "INFP") {
		t.Errorf("expected type code in view:\n%s", view)
	}
}

func TestHistoryScreen_ExpandShowsClarity(t *testing.T) {
	repo := &mockResultRepo{records: []*store.ResultRecord{testRecord(t, "alex")}}
	s := loadedScreen(t, repo)

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := scr.(*HistoryScreen).View(100, 24)
	if !strings.Contains(view, "Extraversion") {
		t.Errorf("expected dichotomy detail in expanded view:\n%s", view)
	}
	if !strings.Contains(view, "Slight") {
		t.Errorf("expected clarity category in expanded view:\n%s", view)
	}
}

func TestHistoryScreen_Navigation(t *testing.T) {
	repo := &mockResultRepo{records: []*store.ResultRecord{
		testRecord(t, "a"),
		testRecord(t, "b"),
	}}
	s := loadedScreen(t, repo)

	scr, _ := s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	hs := scr.(*HistoryScreen)
	if hs.selected != 1 {
		t.Errorf("selected = %d, want 1", hs.selected)
	}

	scr, _ = hs.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	hs = scr.(*HistoryScreen)
	if hs.selected != 1 {
		t.Errorf("selected = %d, want 1 at end of list", hs.selected)
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := loadedScreen(t, &mockResultRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

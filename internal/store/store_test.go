package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testResult(t *testing.T) *scoring.Result {
	t.Helper()
	res, err := scoring.NewEngine(itembank.Default()).Score(scoring.AnswerSet{})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	return res
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAssessment(ctx, AssessmentEventData{
		SessionID:  "sess-1",
		Action:     "start",
		Respondent: "alex",
	})
	if err != nil {
		t.Fatalf("append assessment: %v", err)
	}

	responses := []ResponseEventData{
		{SessionID: "sess-1", ItemID: 0, Dichotomy: "E-I", Action: "answer", ChoiceKey: "A", TimeMs: 1200},
		{SessionID: "sess-1", ItemID: 1, Dichotomy: "E-I", Action: "skip"},
		{SessionID: "sess-2", ItemID: 0, Dichotomy: "E-I", Action: "answer", ChoiceKey: "B"},
	}
	for i, data := range responses {
		if err := repo.AppendResponse(ctx, data); err != nil {
			t.Fatalf("append response %d: %v", i, err)
		}
	}

	n, err := repo.ResponseCount(ctx, "sess-1")
	if err != nil {
		t.Fatalf("response count: %v", err)
	}
	if n != 2 {
		t.Errorf("response count = %d, want 2", n)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "interpretation",
		InputTokens:  350,
		OutputTokens: 420,
		LatencyMs:    2100,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("llm events = %d, want 1", count)
	}
}

func TestResultSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	// No result yet.
	rec, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil result when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &ResultRecord{
		SessionID:    "sess-1",
		Respondent:   "alex",
		Result:       testResult(t),
		Answered:     80,
		Omitted:      13,
		DurationSecs: 600,
		FinishedAt:   now,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil result")
	}
	if rec.SessionID != "sess-1" {
		t.Errorf("session id = %q, want sess-1", rec.SessionID)
	}
	if rec.Result.TypeCode != "INFP" {
		t.Errorf("type code = %s, want INFP", rec.Result.TypeCode)
	}
	if got := rec.Result.Dichotomies[itembank.DichotomyEI]; got.PCI != 1 {
		t.Errorf("round-tripped E-I pci = %d, want 1", got.PCI)
	}
	if rec.Answered != 80 || rec.Omitted != 13 {
		t.Errorf("answered/omitted = %d/%d, want 80/13", rec.Answered, rec.Omitted)
	}
}

func TestResultHistoryNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &ResultRecord{
			SessionID:  "sess-" + string(rune('a'+i)),
			Result:     testResult(t),
			FinishedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	recs, err := repo.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("history len = %d, want 3", len(recs))
	}
	if recs[0].SessionID != "sess-c" {
		t.Errorf("first = %s, want sess-c (newest)", recs[0].SessionID)
	}

	limited, err := repo.History(ctx, 2)
	if err != nil {
		t.Fatalf("history limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited history len = %d, want 2", len(limited))
	}
}

func TestResultPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &ResultRecord{
			SessionID:  "sess-" + string(rune('a'+i)),
			Result:     testResult(t),
			FinishedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Result.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining results = %d, want 5", count)
	}

	rec, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if rec.SessionID != "sess-g" {
		t.Errorf("latest = %s, want sess-g", rec.SessionID)
	}

	// Prune with fewer rows than keep is a no-op.
	if err := repo.Prune(ctx, 10); err != nil {
		t.Fatalf("prune noop: %v", err)
	}
	count, err = s.Client().Result.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining results after noop prune = %d, want 5", count)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the results table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='results'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "results" {
		t.Errorf("table name = %q, want 'results'", name)
	}
}

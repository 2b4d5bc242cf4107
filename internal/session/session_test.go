package session

import (
	"testing"

	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/scoring"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(itembank.Default(), "test")
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t)
	if s.ID == "" {
		t.Error("expected non-empty session id")
	}
	if s.Len() != 93 {
		t.Errorf("len = %d, want 93", s.Len())
	}
	if s.Position() != 1 {
		t.Errorf("position = %d, want 1", s.Position())
	}
	if s.Done() {
		t.Error("fresh session should not be done")
	}
}

func TestAnswerAdvances(t *testing.T) {
	s := newTestSession(t)

	if err := s.Answer("A"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if s.Position() != 2 {
		t.Errorf("position = %d, want 2", s.Position())
	}
	if s.AnsweredCount() != 1 {
		t.Errorf("answered = %d, want 1", s.AnsweredCount())
	}
	if key, ok := s.AnswerFor(0); !ok || key != "A" {
		t.Errorf("answer for item 0 = %q/%v, want A/true", key, ok)
	}
}

func TestAnswerRejectsUnknownKey(t *testing.T) {
	s := newTestSession(t)
	if err := s.Answer("C"); err == nil {
		t.Error("expected error for unknown choice key")
	}
	if s.Position() != 1 {
		t.Error("cursor must not advance on a rejected answer")
	}
}

func TestSkipAndBack(t *testing.T) {
	s := newTestSession(t)

	s.Skip()
	if s.Position() != 2 {
		t.Errorf("position = %d, want 2 after skip", s.Position())
	}
	if s.OmittedCount() != 1 {
		t.Errorf("omitted = %d, want 1", s.OmittedCount())
	}

	// Going back and answering clears the omission.
	s.Back()
	if err := s.Answer("B"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if s.OmittedCount() != 0 {
		t.Errorf("omitted = %d, want 0 after re-answer", s.OmittedCount())
	}

	// Re-answering overwrites.
	s.Back()
	if err := s.Answer("A"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if key, _ := s.AnswerFor(0); key != "A" {
		t.Errorf("answer for item 0 = %q, want A", key)
	}

	// Skipping an answered question clears its answer.
	s.Back()
	s.Skip()
	if _, ok := s.AnswerFor(0); ok {
		t.Error("skip must clear a previous answer")
	}
}

func TestBackAtStartIsNoop(t *testing.T) {
	s := newTestSession(t)
	s.Back()
	if s.Position() != 1 {
		t.Errorf("position = %d, want 1", s.Position())
	}
}

func TestWalkToCompletion(t *testing.T) {
	s := newTestSession(t)
	for !s.Done() {
		if err := s.Answer("A"); err != nil {
			t.Fatalf("answer at %d: %v", s.Position(), err)
		}
	}
	if s.AnsweredCount() != 93 {
		t.Errorf("answered = %d, want 93", s.AnsweredCount())
	}
	if _, ok := s.Current(); ok {
		t.Error("current must report no question once done")
	}
	if err := s.Answer("A"); err == nil {
		t.Error("expected error answering past the end")
	}
}

func TestCompleteScoresAnswers(t *testing.T) {
	s := newTestSession(t)
	engine := scoring.NewEngine(itembank.Default())

	// Complete with no answers at all: defined fallback, not an error.
	out, err := s.Complete(engine)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out.Result.TypeCode != "INFP" {
		t.Errorf("type code = %s, want INFP", out.Result.TypeCode)
	}
	if out.Answered != 0 || out.Omitted != 93 {
		t.Errorf("answered/omitted = %d/%d, want 0/93", out.Answered, out.Omitted)
	}
	if !out.ManyOmissions() {
		t.Error("93 omissions must cross the warning threshold")
	}
	if len(out.SlightClarities()) != 4 {
		t.Errorf("slight clarities = %d, want 4", len(out.SlightClarities()))
	}
}

func TestManyOmissionsThreshold(t *testing.T) {
	engine := scoring.NewEngine(itembank.Default())

	answerAllBut := func(omit int) *Outcome {
		s := newTestSession(t)
		for !s.Done() {
			if s.Position() <= omit {
				s.Skip()
				continue
			}
			if err := s.Answer("A"); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
		out, err := s.Complete(engine)
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		return out
	}

	if answerAllBut(OmissionWarningThreshold - 1).ManyOmissions() {
		t.Error("14 omissions should not warn")
	}
	if !answerAllBut(OmissionWarningThreshold).ManyOmissions() {
		t.Error("15 omissions should warn")
	}
}

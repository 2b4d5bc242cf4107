// Package session tracks one respondent's walk through the
// questionnaire: cursor position, the sparse answer set, and the
// hand-off to the scoring engine on completion. Product policy that
// the engine deliberately excludes (omission warnings, verification
// prompts) lives here, at the answer-collection boundary.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/typeprint/internal/itembank"
	"github.com/abhisek/typeprint/internal/scoring"
)

// OmissionWarningThreshold is the omission count above which the UI
// warns that results may be unreliable. Policy, not scoring: the
// engine itself handles any number of omissions.
const OmissionWarningThreshold = 15

// Session is the mutable state of one assessment in progress.
// Not safe for concurrent use; a session belongs to one screen.
type Session struct {
	ID         string
	Respondent string
	StartedAt  time.Time

	bank    *itembank.Bank
	answers scoring.AnswerSet
	cursor  int
}

// New starts a session over the given item bank.
func New(bank *itembank.Bank, respondent string) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Respondent: respondent,
		StartedAt:  time.Now(),
		bank:       bank,
		answers:    make(scoring.AnswerSet),
	}
}

// Len returns the total number of questions.
func (s *Session) Len() int {
	return s.bank.Len()
}

// Position returns the 1-based number of the current question, as
// shown to the respondent. Internally items are 0-based; the offset is
// applied here and nowhere deeper.
func (s *Session) Position() int {
	return s.cursor + 1
}

// Current returns the item at the cursor. ok is false once the cursor
// has moved past the last question.
func (s *Session) Current() (itembank.Item, bool) {
	if s.cursor >= s.bank.Len() {
		return itembank.Item{}, false
	}
	it, err := s.bank.Item(s.cursor)
	if err != nil {
		return itembank.Item{}, false
	}
	return it, true
}

// Done reports whether the cursor has passed the final question.
func (s *Session) Done() bool {
	return s.cursor >= s.bank.Len()
}

// Answer records the respondent's choice for the current question and
// advances. Revisiting a question and answering again overwrites the
// earlier choice.
func (s *Session) Answer(choiceKey string) error {
	it, ok := s.Current()
	if !ok {
		return fmt.Errorf("answer: no current question")
	}
	if _, ok := it.ScoreKey(choiceKey); !ok {
		return fmt.Errorf("answer: question %d has no option %q", s.Position(), choiceKey)
	}
	s.answers[it.ID] = choiceKey
	s.cursor++
	return nil
}

// Skip advances past the current question without recording an answer.
// Any earlier answer for it is cleared.
func (s *Session) Skip() {
	if it, ok := s.Current(); ok {
		delete(s.answers, it.ID)
		s.cursor++
	}
}

// Back moves the cursor to the previous question, if any.
func (s *Session) Back() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// AnswerFor returns the recorded choice for a 0-based item id.
func (s *Session) AnswerFor(itemID int) (string, bool) {
	key, ok := s.answers[itemID]
	return key, ok
}

// AnsweredCount returns the number of questions answered so far.
func (s *Session) AnsweredCount() int {
	return len(s.answers)
}

// OmittedCount returns the number of questions passed without an
// answer, counting only questions the cursor has reached.
func (s *Session) OmittedCount() int {
	omitted := 0
	for id := 0; id < s.cursor && id < s.bank.Len(); id++ {
		if _, ok := s.answers[id]; !ok {
			omitted++
		}
	}
	return omitted
}

// Answers returns a copy of the sparse answer set.
func (s *Session) Answers() scoring.AnswerSet {
	out := make(scoring.AnswerSet, len(s.answers))
	for id, key := range s.answers {
		out[id] = key
	}
	return out
}

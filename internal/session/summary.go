package session

import (
	"time"

	"github.com/abhisek/typeprint/internal/scoring"
)

// Outcome is a completed assessment: the scored result plus the
// collection facts the persistence and results surfaces need.
type Outcome struct {
	SessionID  string
	Respondent string
	Result     *scoring.Result
	Answered   int
	Omitted    int
	Duration   time.Duration
	FinishedAt time.Time
}

// Complete scores the session's answers and assembles the outcome.
// The session may be partially answered; omissions are not an error.
func (s *Session) Complete(engine *scoring.Engine) (*Outcome, error) {
	result, err := engine.Score(s.answers)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Outcome{
		SessionID:  s.ID,
		Respondent: s.Respondent,
		Result:     result,
		Answered:   len(s.answers),
		Omitted:    s.bank.Len() - len(s.answers),
		Duration:   now.Sub(s.StartedAt),
		FinishedAt: now,
	}, nil
}

// ManyOmissions reports whether the outcome crossed the omission
// warning threshold.
func (o *Outcome) ManyOmissions() bool {
	return o.Omitted >= OmissionWarningThreshold
}

// SlightClarities returns the dichotomy results reported at Slight
// clarity, in scoring order. The results surface suggests verifying
// these with the respondent.
func (o *Outcome) SlightClarities() []scoring.DichotomyResult {
	var out []scoring.DichotomyResult
	for _, dr := range o.Result.Ordered() {
		if dr.PCC == scoring.ClaritySlight {
			out = append(out, dr)
		}
	}
	return out
}

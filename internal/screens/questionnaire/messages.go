package questionnaire

import (
	sess "github.com/abhisek/typeprint/internal/session"
)

// outcomeReadyMsg is sent when scoring and persistence have finished.
type outcomeReadyMsg struct {
	Outcome *sess.Outcome
	Err     error
}

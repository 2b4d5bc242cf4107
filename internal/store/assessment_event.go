package store

import (
	"context"
	"fmt"

	"github.com/abhisek/typeprint/ent"
	"github.com/abhisek/typeprint/ent/responseevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetRespondent(data.Respondent).
		SetTypeCode(data.TypeCode).
		SetAnswered(data.Answered).
		SetOmitted(data.Omitted).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendResponse(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetItemID(data.ItemID).
		SetDichotomy(data.Dichotomy).
		SetAction(data.Action).
		SetChoiceKey(data.ChoiceKey).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) ResponseCount(ctx context.Context, sessionID string) (int, error) {
	n, err := r.client.ResponseEvent.Query().
		Where(responseevent.SessionID(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count response events: %w", err)
	}
	return n, nil
}

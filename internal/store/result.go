package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/typeprint/ent"
	entresult "github.com/abhisek/typeprint/ent/result"
	"github.com/abhisek/typeprint/internal/scoring"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Save(ctx context.Context, rec *ResultRecord) error {
	dataMap, err := resultToMap(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal result data: %w", err)
	}

	_, err = r.client.Result.Create().
		SetSessionID(rec.SessionID).
		SetRespondent(rec.Respondent).
		SetTypeCode(rec.Result.TypeCode).
		SetData(dataMap).
		SetAnswered(rec.Answered).
		SetOmitted(rec.Omitted).
		SetDurationSecs(rec.DurationSecs).
		SetFinishedAt(rec.FinishedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) Latest(ctx context.Context) (*ResultRecord, error) {
	row, err := r.client.Result.Query().
		Order(ent.Desc(entresult.FieldFinishedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest result: %w", err)
	}
	return entResultToRecord(row)
}

func (r *resultRepo) History(ctx context.Context, limit int) ([]*ResultRecord, error) {
	q := r.client.Result.Query().
		Order(ent.Desc(entresult.FieldFinishedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query result history: %w", err)
	}

	out := make([]*ResultRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := entResultToRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *resultRepo) Prune(ctx context.Context, keep int) error {
	// Find the threshold: the timestamp of the Nth most recent result.
	rows, err := r.client.Result.Query().
		Order(ent.Desc(entresult.FieldFinishedAt)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query results for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil // fewer than keep results exist
	}

	threshold := rows[0].FinishedAt
	_, err = r.client.Result.Delete().
		Where(entresult.FinishedAtLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune results: %w", err)
	}
	return nil
}

// resultToMap converts a scored result to map[string]any for ent JSON storage.
func resultToMap(res *scoring.Result) (map[string]any, error) {
	b, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entResultToRecord converts an ent Result row to a store ResultRecord.
func entResultToRecord(row *ent.Result) (*ResultRecord, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var res scoring.Result
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("unmarshal result data: %w", err)
	}
	return &ResultRecord{
		ID:           row.ID,
		SessionID:    row.SessionID,
		Respondent:   row.Respondent,
		Result:       &res,
		Answered:     row.Answered,
		Omitted:      row.Omitted,
		DurationSecs: row.DurationSecs,
		FinishedAt:   row.FinishedAt,
	}, nil
}

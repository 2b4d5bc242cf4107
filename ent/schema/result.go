package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Result is a completed, scored assessment. Unlike the event log this
// is a materialized record: the results and history surfaces read it
// directly instead of replaying events.
type Result struct {
	ent.Schema
}

func (Result) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("Assessment session this result came from"),
		field.String("respondent").
			Default("").
			Comment("Respondent name, if given"),
		field.String("type_code").
			NotEmpty().
			Comment("Four-letter reported type"),
		field.JSON("data", map[string]any{}).
			Comment("Full per-dichotomy scoring detail as JSON"),
		field.Int("answered").
			Default(0),
		field.Int("omitted").
			Default(0),
		field.Int("duration_secs").
			Default(0),
		field.Time("finished_at").
			Default(time.Now).
			Comment("When the assessment completed"),
	}
}

func (Result) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("finished_at"),
		index.Fields("type_code"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records assessment lifecycle events (start/complete/abandon).
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in an assessment"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or abandon"),
		field.String("respondent").
			Default("").
			Comment("Respondent name, if given (on start)"),
		field.String("type_code").
			Default("").
			Comment("Four-letter reported type (on complete only)"),
		field.Int("answered").
			Default(0).
			Comment("Questions answered (on complete only)"),
		field.Int("omitted").
			Default(0).
			Comment("Questions left blank (on complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Time from start to completion (on complete only)"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}

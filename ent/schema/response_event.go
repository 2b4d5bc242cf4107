package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single questionnaire response within an
// assessment. Revisits append a new event rather than rewriting the
// old one; the latest event per item wins on replay.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to AssessmentEvent"),
		field.Int("item_id").
			Comment("0-based item id in the bank"),
		field.String("dichotomy").
			NotEmpty().
			Comment("E-I, S-N, T-F, or J-P"),
		field.String("action").
			NotEmpty().
			Comment("answer or skip"),
		field.String("choice_key").
			Default("").
			Comment("Chosen option key (empty on skip)"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds spent on the question"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
	}
}

// Code generated by ent, DO NOT EDIT.

package result

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/typeprint/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldSessionID, v))
}

// Respondent applies equality check predicate on the "respondent" field. It's identical to RespondentEQ.
func Respondent(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldRespondent, v))
}

// TypeCode applies equality check predicate on the "type_code" field. It's identical to TypeCodeEQ.
func TypeCode(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTypeCode, v))
}

// Answered applies equality check predicate on the "answered" field. It's identical to AnsweredEQ.
func Answered(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldAnswered, v))
}

// Omitted applies equality check predicate on the "omitted" field. It's identical to OmittedEQ.
func Omitted(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldOmitted, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldDurationSecs, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldFinishedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldSessionID, v))
}

// RespondentEQ applies the EQ predicate on the "respondent" field.
func RespondentEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldRespondent, v))
}

// RespondentNEQ applies the NEQ predicate on the "respondent" field.
func RespondentNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldRespondent, v))
}

// RespondentIn applies the In predicate on the "respondent" field.
func RespondentIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldRespondent, vs...))
}

// RespondentNotIn applies the NotIn predicate on the "respondent" field.
func RespondentNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldRespondent, vs...))
}

// RespondentGT applies the GT predicate on the "respondent" field.
func RespondentGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldRespondent, v))
}

// RespondentGTE applies the GTE predicate on the "respondent" field.
func RespondentGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldRespondent, v))
}

// RespondentLT applies the LT predicate on the "respondent" field.
func RespondentLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldRespondent, v))
}

// RespondentLTE applies the LTE predicate on the "respondent" field.
func RespondentLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldRespondent, v))
}

// RespondentContains applies the Contains predicate on the "respondent" field.
func RespondentContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldRespondent, v))
}

// RespondentHasPrefix applies the HasPrefix predicate on the "respondent" field.
func RespondentHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldRespondent, v))
}

// RespondentHasSuffix applies the HasSuffix predicate on the "respondent" field.
func RespondentHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldRespondent, v))
}

// RespondentEqualFold applies the EqualFold predicate on the "respondent" field.
func RespondentEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldRespondent, v))
}

// RespondentContainsFold applies the ContainsFold predicate on the "respondent" field.
func RespondentContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldRespondent, v))
}

// TypeCodeEQ applies the EQ predicate on the "type_code" field.
func TypeCodeEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldTypeCode, v))
}

// TypeCodeNEQ applies the NEQ predicate on the "type_code" field.
func TypeCodeNEQ(v string) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldTypeCode, v))
}

// TypeCodeIn applies the In predicate on the "type_code" field.
func TypeCodeIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldTypeCode, vs...))
}

// TypeCodeNotIn applies the NotIn predicate on the "type_code" field.
func TypeCodeNotIn(vs ...string) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldTypeCode, vs...))
}

// TypeCodeGT applies the GT predicate on the "type_code" field.
func TypeCodeGT(v string) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldTypeCode, v))
}

// TypeCodeGTE applies the GTE predicate on the "type_code" field.
func TypeCodeGTE(v string) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldTypeCode, v))
}

// TypeCodeLT applies the LT predicate on the "type_code" field.
func TypeCodeLT(v string) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldTypeCode, v))
}

// TypeCodeLTE applies the LTE predicate on the "type_code" field.
func TypeCodeLTE(v string) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldTypeCode, v))
}

// TypeCodeContains applies the Contains predicate on the "type_code" field.
func TypeCodeContains(v string) predicate.Result {
	return predicate.Result(sql.FieldContains(FieldTypeCode, v))
}

// TypeCodeHasPrefix applies the HasPrefix predicate on the "type_code" field.
func TypeCodeHasPrefix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasPrefix(FieldTypeCode, v))
}

// TypeCodeHasSuffix applies the HasSuffix predicate on the "type_code" field.
func TypeCodeHasSuffix(v string) predicate.Result {
	return predicate.Result(sql.FieldHasSuffix(FieldTypeCode, v))
}

// TypeCodeEqualFold applies the EqualFold predicate on the "type_code" field.
func TypeCodeEqualFold(v string) predicate.Result {
	return predicate.Result(sql.FieldEqualFold(FieldTypeCode, v))
}

// TypeCodeContainsFold applies the ContainsFold predicate on the "type_code" field.
func TypeCodeContainsFold(v string) predicate.Result {
	return predicate.Result(sql.FieldContainsFold(FieldTypeCode, v))
}

// AnsweredEQ applies the EQ predicate on the "answered" field.
func AnsweredEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldAnswered, v))
}

// AnsweredNEQ applies the NEQ predicate on the "answered" field.
func AnsweredNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldAnswered, v))
}

// AnsweredIn applies the In predicate on the "answered" field.
func AnsweredIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldAnswered, vs...))
}

// AnsweredNotIn applies the NotIn predicate on the "answered" field.
func AnsweredNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldAnswered, vs...))
}

// AnsweredGT applies the GT predicate on the "answered" field.
func AnsweredGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldAnswered, v))
}

// AnsweredGTE applies the GTE predicate on the "answered" field.
func AnsweredGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldAnswered, v))
}

// AnsweredLT applies the LT predicate on the "answered" field.
func AnsweredLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldAnswered, v))
}

// AnsweredLTE applies the LTE predicate on the "answered" field.
func AnsweredLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldAnswered, v))
}

// OmittedEQ applies the EQ predicate on the "omitted" field.
func OmittedEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldOmitted, v))
}

// OmittedNEQ applies the NEQ predicate on the "omitted" field.
func OmittedNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldOmitted, v))
}

// OmittedIn applies the In predicate on the "omitted" field.
func OmittedIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldOmitted, vs...))
}

// OmittedNotIn applies the NotIn predicate on the "omitted" field.
func OmittedNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldOmitted, vs...))
}

// OmittedGT applies the GT predicate on the "omitted" field.
func OmittedGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldOmitted, v))
}

// OmittedGTE applies the GTE predicate on the "omitted" field.
func OmittedGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldOmitted, v))
}

// OmittedLT applies the LT predicate on the "omitted" field.
func OmittedLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldOmitted, v))
}

// OmittedLTE applies the LTE predicate on the "omitted" field.
func OmittedLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldOmitted, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldDurationSecs, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Result {
	return predicate.Result(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Result {
	return predicate.Result(sql.FieldLTE(FieldFinishedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Result) predicate.Result {
	return predicate.Result(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Result) predicate.Result {
	return predicate.Result(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/typeprint/ent/assessmentevent"
	"github.com/abhisek/typeprint/ent/llmrequestevent"
	"github.com/abhisek/typeprint/ent/responseevent"
	"github.com/abhisek/typeprint/ent/result"
	"github.com/abhisek/typeprint/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescAction is the schema descriptor for action field.
	assessmenteventDescAction := assessmenteventFields[1].Descriptor()
	// assessmentevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	assessmentevent.ActionValidator = assessmenteventDescAction.Validators[0].(func(string) error)
	// assessmenteventDescRespondent is the schema descriptor for respondent field.
	assessmenteventDescRespondent := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultRespondent holds the default value on creation for the respondent field.
	assessmentevent.DefaultRespondent = assessmenteventDescRespondent.Default.(string)
	// assessmenteventDescTypeCode is the schema descriptor for type_code field.
	assessmenteventDescTypeCode := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultTypeCode holds the default value on creation for the type_code field.
	assessmentevent.DefaultTypeCode = assessmenteventDescTypeCode.Default.(string)
	// assessmenteventDescAnswered is the schema descriptor for answered field.
	assessmenteventDescAnswered := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultAnswered holds the default value on creation for the answered field.
	assessmentevent.DefaultAnswered = assessmenteventDescAnswered.Default.(int)
	// assessmenteventDescOmitted is the schema descriptor for omitted field.
	assessmenteventDescOmitted := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultOmitted holds the default value on creation for the omitted field.
	assessmentevent.DefaultOmitted = assessmenteventDescOmitted.Default.(int)
	// assessmenteventDescDurationSecs is the schema descriptor for duration_secs field.
	assessmenteventDescDurationSecs := assessmenteventFields[6].Descriptor()
	// assessmentevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	assessmentevent.DefaultDurationSecs = assessmenteventDescDurationSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[0].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescDichotomy is the schema descriptor for dichotomy field.
	responseeventDescDichotomy := responseeventFields[2].Descriptor()
	// responseevent.DichotomyValidator is a validator for the "dichotomy" field. It is called by the builders before save.
	responseevent.DichotomyValidator = responseeventDescDichotomy.Validators[0].(func(string) error)
	// responseeventDescAction is the schema descriptor for action field.
	responseeventDescAction := responseeventFields[3].Descriptor()
	// responseevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	responseevent.ActionValidator = responseeventDescAction.Validators[0].(func(string) error)
	// responseeventDescChoiceKey is the schema descriptor for choice_key field.
	responseeventDescChoiceKey := responseeventFields[4].Descriptor()
	// responseevent.DefaultChoiceKey holds the default value on creation for the choice_key field.
	responseevent.DefaultChoiceKey = responseeventDescChoiceKey.Default.(string)
	// responseeventDescTimeMs is the schema descriptor for time_ms field.
	responseeventDescTimeMs := responseeventFields[5].Descriptor()
	// responseevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	responseevent.DefaultTimeMs = responseeventDescTimeMs.Default.(int)
	resultFields := schema.Result{}.Fields()
	_ = resultFields
	// resultDescSessionID is the schema descriptor for session_id field.
	resultDescSessionID := resultFields[0].Descriptor()
	// result.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	result.SessionIDValidator = resultDescSessionID.Validators[0].(func(string) error)
	// resultDescRespondent is the schema descriptor for respondent field.
	resultDescRespondent := resultFields[1].Descriptor()
	// result.DefaultRespondent holds the default value on creation for the respondent field.
	result.DefaultRespondent = resultDescRespondent.Default.(string)
	// resultDescTypeCode is the schema descriptor for type_code field.
	resultDescTypeCode := resultFields[2].Descriptor()
	// result.TypeCodeValidator is a validator for the "type_code" field. It is called by the builders before save.
	result.TypeCodeValidator = resultDescTypeCode.Validators[0].(func(string) error)
	// resultDescAnswered is the schema descriptor for answered field.
	resultDescAnswered := resultFields[4].Descriptor()
	// result.DefaultAnswered holds the default value on creation for the answered field.
	result.DefaultAnswered = resultDescAnswered.Default.(int)
	// resultDescOmitted is the schema descriptor for omitted field.
	resultDescOmitted := resultFields[5].Descriptor()
	// result.DefaultOmitted holds the default value on creation for the omitted field.
	result.DefaultOmitted = resultDescOmitted.Default.(int)
	// resultDescDurationSecs is the schema descriptor for duration_secs field.
	resultDescDurationSecs := resultFields[6].Descriptor()
	// result.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	result.DefaultDurationSecs = resultDescDurationSecs.Default.(int)
	// resultDescFinishedAt is the schema descriptor for finished_at field.
	resultDescFinishedAt := resultFields[7].Descriptor()
	// result.DefaultFinishedAt holds the default value on creation for the finished_at field.
	result.DefaultFinishedAt = resultDescFinishedAt.Default.(func() time.Time)
}

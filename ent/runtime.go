// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kavery/platewise/ent/completionevent"
	"github.com/kavery/platewise/ent/journey"
	"github.com/kavery/platewise/ent/llmrequestevent"
	"github.com/kavery/platewise/ent/platecheckevent"
	"github.com/kavery/platewise/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescUserID is the schema descriptor for user_id field.
	completioneventDescUserID := completioneventFields[0].Descriptor()
	// completionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	completionevent.UserIDValidator = completioneventDescUserID.Validators[0].(func(string) error)
	// completioneventDescLessonID is the schema descriptor for lesson_id field.
	completioneventDescLessonID := completioneventFields[1].Descriptor()
	// completionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	completionevent.LessonIDValidator = completioneventDescLessonID.Validators[0].(func(string) error)
	// completioneventDescLevel is the schema descriptor for level field.
	completioneventDescLevel := completioneventFields[2].Descriptor()
	// completionevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	completionevent.LevelValidator = completioneventDescLevel.Validators[0].(func(string) error)
	journeyFields := schema.Journey{}.Fields()
	_ = journeyFields
	// journeyDescUserID is the schema descriptor for user_id field.
	journeyDescUserID := journeyFields[0].Descriptor()
	// journey.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	journey.UserIDValidator = journeyDescUserID.Validators[0].(func(string) error)
	// journeyDescSchemaVersion is the schema descriptor for schema_version field.
	journeyDescSchemaVersion := journeyFields[1].Descriptor()
	// journey.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	journey.DefaultSchemaVersion = journeyDescSchemaVersion.Default.(int)
	// journeyDescCurrentLevel is the schema descriptor for current_level field.
	journeyDescCurrentLevel := journeyFields[3].Descriptor()
	// journey.DefaultCurrentLevel holds the default value on creation for the current_level field.
	journey.DefaultCurrentLevel = journeyDescCurrentLevel.Default.(string)
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
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	platecheckeventMixin := schema.PlateCheckEvent{}.Mixin()
	platecheckeventMixinFields0 := platecheckeventMixin[0].Fields()
	_ = platecheckeventMixinFields0
	platecheckeventFields := schema.PlateCheckEvent{}.Fields()
	_ = platecheckeventFields
	// platecheckeventDescTimestamp is the schema descriptor for timestamp field.
	platecheckeventDescTimestamp := platecheckeventMixinFields0[1].Descriptor()
	// platecheckevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	platecheckevent.DefaultTimestamp = platecheckeventDescTimestamp.Default.(func() time.Time)
	// platecheckeventDescCheckID is the schema descriptor for check_id field.
	platecheckeventDescCheckID := platecheckeventFields[0].Descriptor()
	// platecheckevent.CheckIDValidator is a validator for the "check_id" field. It is called by the builders before save.
	platecheckevent.CheckIDValidator = platecheckeventDescCheckID.Validators[0].(func(string) error)
	// platecheckeventDescUserID is the schema descriptor for user_id field.
	platecheckeventDescUserID := platecheckeventFields[1].Descriptor()
	// platecheckevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	platecheckevent.UserIDValidator = platecheckeventDescUserID.Validators[0].(func(string) error)
	// platecheckeventDescReactionType is the schema descriptor for reaction_type field.
	platecheckeventDescReactionType := platecheckeventFields[4].Descriptor()
	// platecheckevent.ReactionTypeValidator is a validator for the "reaction_type" field. It is called by the builders before save.
	platecheckevent.ReactionTypeValidator = platecheckeventDescReactionType.Validators[0].(func(string) error)
	// platecheckeventDescReactionID is the schema descriptor for reaction_id field.
	platecheckeventDescReactionID := platecheckeventFields[5].Descriptor()
	// platecheckevent.DefaultReactionID holds the default value on creation for the reaction_id field.
	platecheckevent.DefaultReactionID = platecheckeventDescReactionID.Default.(string)
	// platecheckeventDescSuggestion is the schema descriptor for suggestion field.
	platecheckeventDescSuggestion := platecheckeventFields[6].Descriptor()
	// platecheckevent.DefaultSuggestion holds the default value on creation for the suggestion field.
	platecheckevent.DefaultSuggestion = platecheckeventDescSuggestion.Default.(string)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhinav-rk/studyloop/ent/activityevent"
	"github.com/abhinav-rk/studyloop/ent/llmrequestevent"
	"github.com/abhinav-rk/studyloop/ent/profile"
	"github.com/abhinav-rk/studyloop/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityeventMixin := schema.ActivityEvent{}.Mixin()
	activityeventMixinFields0 := activityeventMixin[0].Fields()
	_ = activityeventMixinFields0
	activityeventFields := schema.ActivityEvent{}.Fields()
	_ = activityeventFields
	// activityeventDescCreatedAt is the schema descriptor for created_at field.
	activityeventDescCreatedAt := activityeventMixinFields0[1].Descriptor()
	// activityevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityevent.DefaultCreatedAt = activityeventDescCreatedAt.Default.(func() time.Time)
	// activityeventDescEventID is the schema descriptor for event_id field.
	activityeventDescEventID := activityeventFields[0].Descriptor()
	// activityevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	activityevent.EventIDValidator = activityeventDescEventID.Validators[0].(func(string) error)
	// activityeventDescUserID is the schema descriptor for user_id field.
	activityeventDescUserID := activityeventFields[1].Descriptor()
	// activityevent.DefaultUserID holds the default value on creation for the user_id field.
	activityevent.DefaultUserID = activityeventDescUserID.Default.(string)
	// activityeventDescSessionID is the schema descriptor for session_id field.
	activityeventDescSessionID := activityeventFields[2].Descriptor()
	// activityevent.DefaultSessionID holds the default value on creation for the session_id field.
	activityevent.DefaultSessionID = activityeventDescSessionID.Default.(string)
	// activityeventDescEventType is the schema descriptor for event_type field.
	activityeventDescEventType := activityeventFields[3].Descriptor()
	// activityevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	activityevent.EventTypeValidator = activityeventDescEventType.Validators[0].(func(string) error)
	// activityeventDescMode is the schema descriptor for mode field.
	activityeventDescMode := activityeventFields[4].Descriptor()
	// activityevent.DefaultMode holds the default value on creation for the mode field.
	activityevent.DefaultMode = activityeventDescMode.Default.(string)
	// activityeventDescSource is the schema descriptor for source field.
	activityeventDescSource := activityeventFields[5].Descriptor()
	// activityevent.DefaultSource holds the default value on creation for the source field.
	activityevent.DefaultSource = activityeventDescSource.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
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
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
}

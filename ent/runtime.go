// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studypal/ent/attemptevent"
	"github.com/abhisek/studypal/ent/learningprofile"
	"github.com/abhisek/studypal/ent/llmrequestevent"
	"github.com/abhisek/studypal/ent/schema"
	"github.com/abhisek/studypal/ent/usagecounter"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[0].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[1].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescTopic is the schema descriptor for topic field.
	attempteventDescTopic := attempteventFields[2].Descriptor()
	// attemptevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	attemptevent.TopicValidator = attempteventDescTopic.Validators[0].(func(string) error)
	// attempteventDescOpenEnded is the schema descriptor for open_ended field.
	attempteventDescOpenEnded := attempteventFields[5].Descriptor()
	// attemptevent.DefaultOpenEnded holds the default value on creation for the open_ended field.
	attemptevent.DefaultOpenEnded = attempteventDescOpenEnded.Default.(int)
	// attempteventDescGraded is the schema descriptor for graded field.
	attempteventDescGraded := attempteventFields[6].Descriptor()
	// attemptevent.DefaultGraded holds the default value on creation for the graded field.
	attemptevent.DefaultGraded = attempteventDescGraded.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[0].Descriptor()
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
	learningprofileFields := schema.LearningProfile{}.Fields()
	_ = learningprofileFields
	// learningprofileDescUserID is the schema descriptor for user_id field.
	learningprofileDescUserID := learningprofileFields[0].Descriptor()
	// learningprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningprofile.UserIDValidator = learningprofileDescUserID.Validators[0].(func(string) error)
	// learningprofileDescTopic is the schema descriptor for topic field.
	learningprofileDescTopic := learningprofileFields[1].Descriptor()
	// learningprofile.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	learningprofile.TopicValidator = learningprofileDescTopic.Validators[0].(func(string) error)
	// learningprofileDescProgressScore is the schema descriptor for progress_score field.
	learningprofileDescProgressScore := learningprofileFields[4].Descriptor()
	// learningprofile.DefaultProgressScore holds the default value on creation for the progress_score field.
	learningprofile.DefaultProgressScore = learningprofileDescProgressScore.Default.(int)
	// learningprofileDescLastUpdated is the schema descriptor for last_updated field.
	learningprofileDescLastUpdated := learningprofileFields[5].Descriptor()
	// learningprofile.DefaultLastUpdated holds the default value on creation for the last_updated field.
	learningprofile.DefaultLastUpdated = learningprofileDescLastUpdated.Default.(func() time.Time)
	usagecounterFields := schema.UsageCounter{}.Fields()
	_ = usagecounterFields
	// usagecounterDescUserID is the schema descriptor for user_id field.
	usagecounterDescUserID := usagecounterFields[0].Descriptor()
	// usagecounter.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	usagecounter.UserIDValidator = usagecounterDescUserID.Validators[0].(func(string) error)
	// usagecounterDescAction is the schema descriptor for action field.
	usagecounterDescAction := usagecounterFields[1].Descriptor()
	// usagecounter.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	usagecounter.ActionValidator = usagecounterDescAction.Validators[0].(func(string) error)
	// usagecounterDescCount is the schema descriptor for count field.
	usagecounterDescCount := usagecounterFields[2].Descriptor()
	// usagecounter.DefaultCount holds the default value on creation for the count field.
	usagecounter.DefaultCount = usagecounterDescCount.Default.(int)
	// usagecounter.CountValidator is a validator for the "count" field. It is called by the builders before save.
	usagecounter.CountValidator = usagecounterDescCount.Validators[0].(func(int) error)
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent is one behavioral activity record: a session join, a chat
// message, a whiteboard stroke, a question, a resource open, and so on.
// Rows are append-only; the analytics pipeline orders them by the
// client-supplied timestamp, never by arrival.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			NotEmpty().
			Comment("UUID assigned at append time"),
		field.String("user_id").
			Default("").
			Comment("Learner the event belongs to"),
		field.String("session_id").
			Default("").
			Comment("Groups events into a study session; empty means unsessionized"),
		field.String("event_type").
			NotEmpty().
			Comment("SESSION_JOINED, CHAT_MESSAGE_SENT, WHITEBOARD_USED, ..."),
		field.String("mode").
			Default("solo").
			Comment("solo or group"),
		field.String("source").
			Default("").
			Comment("Originating surface: chat, whiteboard, quiz, watcher, simulate"),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Comment("Free-form event payload"),
		field.Int64("timestamp_ms").
			Comment("Client event time in Unix milliseconds; the ordering key"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("event_type"),
		index.Fields("timestamp_ms"),
	}
}

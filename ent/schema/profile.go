package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile is the learner's persisted document: the active roadmap, the
// rolling action-id history, and the last SWOT narrative. A new row is
// written on every update; the newest row wins, so older rows double as
// a cheap audit trail until pruned.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event sequence number at the time of the write"),
		field.Time("updated_at").
			Default(time.Now).
			Comment("When this profile version was written"),
		field.JSON("data", map[string]any{}).
			Comment("Roadmap, action history and SWOT cache as JSON"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
		index.Fields("sequence"),
	}
}

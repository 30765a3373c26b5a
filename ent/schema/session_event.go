package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/reset/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.Enum("action").
			Values("start", "reset", "end").
			Comment("Lifecycle transition"),
		field.Int("rounds_played").
			Default(0).
			Comment("Scored rounds at the time of the event"),
		field.Int("total_score").
			Default(0).
			Comment("Exact matches across rounds"),
		field.Int("max_possible_score").
			Default(0).
			Comment("Items ranked across rounds"),
		field.Int("best_streak").
			Default(0).
			Comment("Longest perfect-round streak"),
		field.Int("duration_secs").
			Default(0).
			Comment("Seconds since the session started"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}

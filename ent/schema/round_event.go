package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records one scored ranking round.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session the round belongs to"),
		field.Int("round").
			Positive().
			Comment("1-based round number within the session"),
		field.Int("example_id").
			Comment("Curated or synthesized example set id"),
		field.String("title").
			Default("").
			Comment("Example set title"),
		field.String("difficulty").
			NotEmpty().
			Comment("beginner, intermediate or advanced"),
		field.String("concept").
			NotEmpty().
			Comment("sample_size, perfect_scores, similar_ratios or high_volume"),
		field.Bool("synthesized").
			Default(false).
			Comment("Whether the set was generated rather than curated"),
		field.Int("item_count").
			Comment("Number of items ranked"),
		field.Int("exact_matches").
			Comment("Items placed at their actual rank"),
		field.Int("score").
			Comment("Weighted score"),
		field.Int("max_score").
			Comment("Maximum weighted score"),
		field.Bool("perfect").
			Comment("Every item placed at its actual rank"),
		field.Int("streak").
			Default(0).
			Comment("Perfect-round streak after this round"),
		field.JSON("submitted_order", []int{}).
			Comment("Item ids in the learner's order"),
		field.JSON("actual_order", []int{}).
			Comment("Item ids in Wilson order"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Time from round start to submission"),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("concept"),
		index.Fields("difficulty"),
	}
}

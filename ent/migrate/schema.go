// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// RoundEventsColumns holds the columns for the "round_events" table.
	RoundEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "round", Type: field.TypeInt},
		{Name: "example_id", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "concept", Type: field.TypeString},
		{Name: "synthesized", Type: field.TypeBool, Default: false},
		{Name: "item_count", Type: field.TypeInt},
		{Name: "exact_matches", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "max_score", Type: field.TypeInt},
		{Name: "perfect", Type: field.TypeBool},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "submitted_order", Type: field.TypeJSON},
		{Name: "actual_order", Type: field.TypeJSON},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// RoundEventsTable holds the schema information for the "round_events" table.
	RoundEventsTable = &schema.Table{
		Name:       "round_events",
		Columns:    RoundEventsColumns,
		PrimaryKey: []*schema.Column{RoundEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roundevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[1]},
			},
			{
				Name:    "roundevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[2]},
			},
			{
				Name:    "roundevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[3]},
			},
			{
				Name:    "roundevent_concept",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[8]},
			},
			{
				Name:    "roundevent_difficulty",
				Unique:  false,
				Columns: []*schema.Column{RoundEventsColumns[7]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"start", "reset", "end"}},
		{Name: "rounds_played", Type: field.TypeInt, Default: 0},
		{Name: "total_score", Type: field.TypeInt, Default: 0},
		{Name: "max_possible_score", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		RoundEventsTable,
		SessionEventsTable,
	}
)

func init() {
}

package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table declarations consumed by the ent migration engine.
var (
	// CompletedModulesColumns holds the columns for the "completed_modules" table.
	CompletedModulesColumns = []*schema.Column{
		{Name: "module_key", Type: field.TypeString, Size: 255},
		{Name: "completed_at", Type: field.TypeInt64},
	}
	// CompletedModulesTable holds one row per completed curriculum module.
	CompletedModulesTable = &schema.Table{
		Name:       "completed_modules",
		Columns:    CompletedModulesColumns,
		PrimaryKey: []*schema.Column{CompletedModulesColumns[0]},
	}

	// PreferencesColumns holds the columns for the "preferences" table.
	PreferencesColumns = []*schema.Column{
		{Name: "pref_key", Type: field.TypeString, Size: 64},
		{Name: "pref_value", Type: field.TypeString, Size: 255},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// PreferencesTable is a small key/value table for UI preferences.
	PreferencesTable = &schema.Table{
		Name:       "preferences",
		Columns:    PreferencesColumns,
		PrimaryKey: []*schema.Column{PreferencesColumns[0]},
	}

	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "request_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "response_body", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// LlmRequestEventsTable records every LLM request made by the assistant.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
		},
	}

	// SimulationRunsColumns holds the columns for the "simulation_runs" table.
	SimulationRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "ticker", Type: field.TypeString},
		{Name: "iterations", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeInt64},
		{Name: "finished_at", Type: field.TypeInt64},
		{Name: "completed", Type: field.TypeBool},
		{Name: "final_progress", Type: field.TypeInt},
		{Name: "total_pnl", Type: field.TypeFloat64},
		{Name: "sharpe", Type: field.TypeFloat64},
		{Name: "win_rate", Type: field.TypeFloat64},
		{Name: "max_drawdown", Type: field.TypeFloat64},
	}
	// SimulationRunsTable records finished or aborted analyst simulations.
	SimulationRunsTable = &schema.Table{
		Name:       "simulation_runs",
		Columns:    SimulationRunsColumns,
		PrimaryKey: []*schema.Column{SimulationRunsColumns[0]},
	}

	// GlobalSequenceColumns holds the columns for the "global_sequence" table.
	GlobalSequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	// GlobalSequenceTable is a single-row counter shared by the append-only
	// tables.
	GlobalSequenceTable = &schema.Table{
		Name:       "global_sequence",
		Columns:    GlobalSequenceColumns,
		PrimaryKey: []*schema.Column{GlobalSequenceColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GlobalSequenceTable,
		CompletedModulesTable,
		PreferencesTable,
		LlmRequestEventsTable,
		SimulationRunsTable,
	}
)

package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// simulationRepo implements SimulationRepo using the ent SQL driver.
type simulationRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *simulationRepo) AppendSimulationRun(ctx context.Context, data SimulationRunData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(SimulationRunsTable.Name).
		Columns(
			"sequence", "run_id", "ticker", "iterations", "started_at", "finished_at",
			"completed", "final_progress", "total_pnl", "sharpe", "win_rate", "max_drawdown",
		).
		Values(
			seqNum, data.RunID, data.Ticker, data.Iterations,
			data.StartedAt.UnixMilli(), data.FinishedAt.UnixMilli(),
			data.Completed, data.FinalProgress,
			data.TotalPnL, data.Sharpe, data.WinRate, data.MaxDrawdown,
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save simulation run: %w", err)
	}
	return nil
}

func (r *simulationRepo) QuerySimulationRuns(ctx context.Context, opts QueryOpts) ([]SimulationRunRecord, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(
			"id", "sequence", "run_id", "ticker", "iterations", "started_at", "finished_at",
			"completed", "final_progress", "total_pnl", "sharpe", "win_rate", "max_drawdown",
		).
		From(entsql.Table(SimulationRunsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	applyQueryOpts(sel, opts, "started_at")

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query simulation runs: %w", err)
	}
	defer rows.Close()

	var records []SimulationRunRecord
	for rows.Next() {
		var (
			rec               SimulationRunRecord
			started, finished int64
		)
		err := rows.Scan(
			&rec.ID, &rec.Sequence, &rec.RunID, &rec.Ticker, &rec.Iterations,
			&started, &finished, &rec.Completed, &rec.FinalProgress,
			&rec.TotalPnL, &rec.Sharpe, &rec.WinRate, &rec.MaxDrawdown,
		)
		if err != nil {
			return nil, fmt.Errorf("scan simulation run: %w", err)
		}
		rec.StartedAt = time.UnixMilli(started)
		rec.FinishedAt = time.UnixMilli(finished)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate simulation runs: %w", err)
	}
	return records, nil
}

package store

import (
	"context"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter issues one monotonic sequence across every append-only
// table (LLM requests, simulation runs) so records of different kinds can
// be ordered against each other. The read and bump share a transaction; the
// mutex keeps callers in this process from contending for it.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(GlobalSequenceTable.Name).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.DoNothing()).
		Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next returns the current value and advances the counter.
func (c *sequenceCounter) Next(ctx context.Context) (seq int64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.drv.Tx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("next_val").
		From(entsql.Table(GlobalSequenceTable.Name)).
		Where(entsql.EQ("id", 1)).
		Query()
	var rows entsql.Rows
	if err = tx.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	if rows.Next() {
		err = rows.Scan(&seq)
	} else {
		err = fmt.Errorf("sequence row missing")
	}
	if cerr := rows.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}

	query, args = b.Update(GlobalSequenceTable.Name).
		Add("next_val", 1).
		Where(entsql.EQ("id", 1)).
		Query()
	if err = tx.Exec(ctx, query, args, nil); err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return seq, nil
}

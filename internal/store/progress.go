package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// progressRepo implements ProgressRepo over the completed_modules table.
type progressRepo struct {
	drv *entsql.Driver
}

func (r *progressRepo) CompletedModules(ctx context.Context) ([]ModuleCompletion, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("module_key", "completed_at").
		From(entsql.Table(CompletedModulesTable.Name)).
		OrderBy("completed_at", "module_key").
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query completed modules: %w", err)
	}
	defer rows.Close()

	var out []ModuleCompletion
	for rows.Next() {
		var (
			key string
			at  int64
		)
		if err := rows.Scan(&key, &at); err != nil {
			return nil, fmt.Errorf("scan completed module: %w", err)
		}
		out = append(out, ModuleCompletion{Key: key, CompletedAt: time.UnixMilli(at)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate completed modules: %w", err)
	}
	return out, nil
}

func (r *progressRepo) MarkComplete(ctx context.Context, key string, at time.Time) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(CompletedModulesTable.Name).
		Columns("module_key", "completed_at").
		Values(key, at.UnixMilli()).
		OnConflict(entsql.ConflictColumns("module_key"), entsql.DoNothing()).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("mark %q complete: %w", key, err)
	}
	return nil
}

func (r *progressRepo) MarkPending(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(CompletedModulesTable.Name).
		Where(entsql.EQ("module_key", key)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("mark %q pending: %w", key, err)
	}
	return nil
}

func (r *progressRepo) ClearModules(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(CompletedModulesTable.Name).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear completed modules: %w", err)
	}
	return nil
}

// preferenceRepo implements PreferenceRepo over the preferences table.
type preferenceRepo struct {
	drv *entsql.Driver
}

func (r *preferenceRepo) Preference(ctx context.Context, name string) (string, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("pref_value").
		From(entsql.Table(PreferencesTable.Name)).
		Where(entsql.EQ("pref_key", name)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return "", false, fmt.Errorf("query preference %q: %w", name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return "", false, rows.Err()
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return "", false, fmt.Errorf("scan preference %q: %w", name, err)
	}
	return value, true, nil
}

func (r *preferenceRepo) SetPreference(ctx context.Context, name, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(PreferencesTable.Name).
		Columns("pref_key", "pref_value", "updated_at").
		Values(name, value, time.Now().UnixMilli()).
		OnConflict(entsql.ConflictColumns("pref_key"), entsql.ResolveWithNewValues()).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("set preference %q: %w", name, err)
	}
	return nil
}

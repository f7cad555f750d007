package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// entryRepo implements EntryRepo on the entries table.
type entryRepo struct {
	drv *entsql.Driver
}

func (r *entryRepo) Get(ctx context.Context, key string) ([]byte, error) {
	b := builder()
	query, args := b.Select("value").
		From(b.Table(entriesTable)).
		Where(entsql.EQ("storage_key", key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query entry %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query entry %q: %w", key, err)
		}
		return nil, ErrNotFound
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return nil, fmt.Errorf("scan entry %q: %w", key, err)
	}
	return []byte(value), nil
}

func (r *entryRepo) Put(ctx context.Context, key string, value []byte) error {
	query, args := builder().Insert(entriesTable).
		Columns("storage_key", "value", "updated_at").
		Values(key, string(value), time.Now().UnixNano()).
		OnConflict(
			entsql.ConflictColumns("storage_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save entry %q: %w", key, err)
	}
	return nil
}

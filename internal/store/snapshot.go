package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// snapshotRepo implements SnapshotRepo on the snapshots table.
type snapshotRepo struct {
	drv *entsql.Driver
}

var snapshotColumns = []string{"id", "storage_key", "reason", "created_at", "data"}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.ID == "" {
		snap.ID = uuid.New().String()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now()
	}

	query, args := builder().Insert(snapshotsTable).
		Columns(snapshotColumns...).
		Values(snap.ID, snap.Key, snap.Reason, snap.CreatedAt.UnixNano(), string(snap.Data)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Get(ctx context.Context, id string) (*Snapshot, error) {
	b := builder()
	query, args := b.Select(snapshotColumns...).
		From(b.Table(snapshotsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	snaps, err := r.query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, ErrNotFound
	}
	return &snaps[0], nil
}

func (r *snapshotRepo) Latest(ctx context.Context, key string) (*Snapshot, error) {
	snaps, err := r.List(ctx, key, 1)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	return &snaps[0], nil
}

func (r *snapshotRepo) List(ctx context.Context, key string, limit int) ([]Snapshot, error) {
	b := builder()
	sel := b.Select(snapshotColumns...).
		From(b.Table(snapshotsTable)).
		Where(entsql.EQ("storage_key", key))
	sel.OrderBy(entsql.Desc(sel.C("created_at")))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	return r.query(ctx, query, args)
}

func (r *snapshotRepo) Prune(ctx context.Context, key string, keep int) error {
	// Find the threshold: the newest snapshot that falls outside the window.
	b := builder()
	sel := b.Select("created_at").
		From(b.Table(snapshotsTable)).
		Where(entsql.EQ("storage_key", key))
	sel.OrderBy(entsql.Desc(sel.C("created_at"))).
		Offset(keep).
		Limit(1)

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	var threshold int64
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	rows.Close()
	if !found {
		return nil // fewer than keep snapshots exist
	}

	query, args = builder().Delete(snapshotsTable).
		Where(entsql.And(
			entsql.EQ("storage_key", key),
			entsql.LTE("created_at", threshold),
		)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) query(ctx context.Context, query string, args []any) ([]Snapshot, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var (
			s       Snapshot
			created int64
			data    string
		)
		if err := rows.Scan(&s.ID, &s.Key, &s.Reason, &created, &data); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		s.CreatedAt = time.Unix(0, created)
		s.Data = []byte(data)
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return snaps, nil
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/jointpanel/internal/ir"
)

// RecordBuild persists layout and appends a build for its rig.
//
// The layout row is content-addressed: recording identical organizer output
// twice stores one layout and two builds. The build receives the next seq
// and an ID from the store's IDGenerator.
func (s *Store) RecordBuild(ctx context.Context, layout ir.Layout) (ir.Build, error) {
	body, err := ir.MarshalLayout(layout)
	if err != nil {
		return ir.Build{}, fmt.Errorf("marshal layout: %w", err)
	}
	hash, err := ir.LayoutHash(layout)
	if err != nil {
		return ir.Build{}, fmt.Errorf("hash layout: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ir.Build{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO layouts (hash, rig, policy, ir_version, body)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(hash) DO NOTHING
	`, hash, layout.Rig, string(layout.Policy), ir.IRVersion, string(body))
	if err != nil {
		return ir.Build{}, fmt.Errorf("insert layout %s: %w", hash, err)
	}

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM builds`).Scan(&seq); err != nil {
		return ir.Build{}, fmt.Errorf("next seq: %w", err)
	}

	build := ir.Build{
		ID:         s.ids.Generate(),
		Seq:        seq,
		Rig:        layout.Rig,
		LayoutHash: hash,
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO builds (id, seq, rig, layout_hash)
		VALUES (?, ?, ?, ?)
	`, build.ID, build.Seq, build.Rig, build.LayoutHash)
	if err != nil {
		return ir.Build{}, fmt.Errorf("insert build %s: %w", build.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return ir.Build{}, fmt.Errorf("commit build: %w", err)
	}
	return build, nil
}

// ReadLayout loads the layout stored under hash.
// Returns ErrNotFound if no such layout exists.
func (s *Store) ReadLayout(ctx context.Context, hash string) (ir.Layout, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM layouts WHERE hash = ?`, hash).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Layout{}, fmt.Errorf("layout %s: %w", hash, ErrNotFound)
	}
	if err != nil {
		return ir.Layout{}, fmt.Errorf("query layout %s: %w", hash, err)
	}

	var layout ir.Layout
	if err := json.Unmarshal([]byte(body), &layout); err != nil {
		return ir.Layout{}, fmt.Errorf("decode layout %s: %w", hash, err)
	}
	return layout, nil
}

// ListBuilds returns the builds of rig in seq order.
// An empty rig lists builds of every rig.
func (s *Store) ListBuilds(ctx context.Context, rig string) ([]ir.Build, error) {
	query := `
		SELECT id, seq, rig, layout_hash
		FROM builds
		WHERE (? = '' OR rig = ?)
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`
	rows, err := s.db.QueryContext(ctx, query, rig, rig)
	if err != nil {
		return nil, fmt.Errorf("query builds: %w", err)
	}
	defer rows.Close()

	var builds []ir.Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, err
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate builds: %w", err)
	}
	return builds, nil
}

// LatestBuild returns the highest-seq build of rig.
// An empty rig considers builds of every rig.
// Returns ErrNotFound if nothing matching has been built.
func (s *Store) LatestBuild(ctx context.Context, rig string) (ir.Build, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, rig, layout_hash
		FROM builds
		WHERE (? = '' OR rig = ?)
		ORDER BY seq DESC
		LIMIT 1
	`, rig, rig)

	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Build{}, fmt.Errorf("latest build of %q: %w", rig, ErrNotFound)
	}
	if err != nil {
		return ir.Build{}, err
	}
	return b, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBuild(sc scanner) (ir.Build, error) {
	var b ir.Build
	if err := sc.Scan(&b.ID, &b.Seq, &b.Rig, &b.LayoutHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ir.Build{}, err
		}
		return ir.Build{}, fmt.Errorf("scan build: %w", err)
	}
	return b, nil
}

// SPDX-License-Identifier: MIT
// Package: treeembed/store
//
// store.go — SQLite-backed run archive.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/viant/vec/search"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/katalvlaran/treeembed/descent"
	"github.com/katalvlaran/treeembed/energy"
	"github.com/katalvlaran/treeembed/experiment"
	"github.com/katalvlaran/treeembed/geom"
)

// DriverName is the database/sql driver the archive is opened with.
const DriverName = "sqlite"

// Store is a durable archive of finished runs.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one archived run, as loaded back from the database.
type Run struct {
	ID         int64
	CreatedAt  time.Time
	Config     experiment.Config
	Energy     float64
	Iterations int
	Samples    []descent.Sample
	Points     []geom.Point
	Parents    []int
}

// Summary is the listing row of a run.
type Summary struct {
	ID         int64
	CreatedAt  time.Time
	Geometry   string
	Points     int
	Iterations int
	Energy     float64
}

// Neighbor is one Nearest result.
type Neighbor struct {
	Node     int
	Distance float64
}

// Open opens (or creates) the archive at dsn. For an in-memory archive pass
// ":memory:".
func Open(dsn string) (*Store, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodOpen, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err = ensureSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: schema: %w", methodOpen, err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// SaveRun archives out in one transaction and returns the new run id.
func (s *Store) SaveRun(ctx context.Context, out *experiment.Outcome) (int64, error) {
	if out == nil || out.Tree == nil || out.Result == nil {
		return 0, fmt.Errorf("%s: %w", methodSave, ErrIncompleteOutcome)
	}
	if len(out.Result.Points) != out.Tree.Len() {
		return 0, fmt.Errorf("%s: %d points for %d nodes: %w",
			methodSave, len(out.Result.Points), out.Tree.Len(), ErrIncompleteOutcome)
	}
	cfg, err := json.Marshal(out.Config)
	if err != nil {
		return 0, fmt.Errorf("%s: config: %w", methodSave, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodSave, err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs(created_at, geometry, n_points, iterations, energy, config) VALUES(?, ?, ?, ?, ?, ?)`,
		s.now().Unix(), out.Config.Geometry, out.Tree.Len(), out.Result.Iterations, out.Result.Energy, string(cfg))
	if err != nil {
		return 0, fmt.Errorf("%s: insert run: %w", methodSave, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodSave, err)
	}

	if err = insertSamples(ctx, tx, id, out.Result.Samples); err != nil {
		return 0, fmt.Errorf("%s: run %d: %w", methodSave, id, err)
	}
	if err = insertPoints(ctx, tx, id, out.Result.Points, out.Parents()); err != nil {
		return 0, fmt.Errorf("%s: run %d: %w", methodSave, id, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", methodSave, err)
	}

	return id, nil
}

func insertSamples(ctx context.Context, tx *sql.Tx, id int64, samples []descent.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO samples(run_id, iteration, energy) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, smp := range samples {
		if _, err = stmt.ExecContext(ctx, id, smp.Iteration, smp.Energy); err != nil {
			return fmt.Errorf("sample %d: %w", smp.Iteration, err)
		}
	}

	return nil
}

func insertPoints(ctx context.Context, tx *sql.Tx, id int64, pts []geom.Point, parents []int) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO points(run_id, node, parent, x, y, embedding) VALUES(?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range pts {
		if _, err = stmt.ExecContext(ctx, id, i, parents[i], p.X, p.Y, encodeEmbedding(p)); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
	}

	return nil
}

// LoadRun reads back the run with the given id.
func (s *Store) LoadRun(ctx context.Context, id int64) (*Run, error) {
	var (
		run     = &Run{ID: id}
		created int64
		cfg     string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, iterations, energy, config FROM runs WHERE id = ?`, id,
	).Scan(&created, &run.Iterations, &run.Energy, &cfg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: id=%d: %w", methodLoad, id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", methodLoad, id, err)
	}
	run.CreatedAt = time.Unix(created, 0)
	if err = json.Unmarshal([]byte(cfg), &run.Config); err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", methodLoad, id, err)
	}

	if run.Samples, err = s.loadSamples(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", methodLoad, id, err)
	}
	rows, err := s.loadPoints(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", methodLoad, id, err)
	}
	run.Points = make([]geom.Point, len(rows))
	run.Parents = make([]int, len(rows))
	for i, r := range rows {
		run.Points[i] = r.point
		run.Parents[i] = r.parent
	}

	return run, nil
}

func (s *Store) loadSamples(ctx context.Context, id int64) ([]descent.Sample, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT iteration, energy FROM samples WHERE run_id = ? ORDER BY iteration`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []descent.Sample
	for rows.Next() {
		var smp descent.Sample
		if err = rows.Scan(&smp.Iteration, &smp.Energy); err != nil {
			return nil, err
		}
		out = append(out, smp)
	}

	return out, rows.Err()
}

type pointRow struct {
	point     geom.Point
	parent    int
	embedding []float32
}

func (s *Store) loadPoints(ctx context.Context, id int64) ([]pointRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT parent, x, y, embedding FROM points WHERE run_id = ? ORDER BY node`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pointRow
	for rows.Next() {
		var (
			r    pointRow
			blob []byte
		)
		if err = rows.Scan(&r.parent, &r.point.X, &r.point.Y, &blob); err != nil {
			return nil, err
		}
		if r.embedding, err = decodeEmbedding(blob); err != nil {
			return nil, fmt.Errorf("node %d: %w", len(out), err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// ListRuns returns every archived run, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, geometry, n_points, iterations, energy FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodList, err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sm      Summary
			created int64
		)
		if err = rows.Scan(&sm.ID, &created, &sm.Geometry, &sm.Points, &sm.Iterations, &sm.Energy); err != nil {
			return nil, fmt.Errorf("%s: %w", methodList, err)
		}
		sm.CreatedAt = time.Unix(created, 0)
		out = append(out, sm)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodList, err)
	}

	return out, nil
}

// Nearest returns up to k nodes of run closest to node, nearest first, ties
// broken by node index. k ≤ 0 returns nil.
//
// Precision differs by geometry: euclidean runs are ranked over the stored
// float32 embeddings, so pairs closer than float32 resolution may tie or
// swap; hyperbolic runs use Poincaré distances over the exact float64
// coordinates, since float32 rounding blows up near the disk boundary.
func (s *Store) Nearest(ctx context.Context, runID int64, node, k int) ([]Neighbor, error) {
	var geometry string
	err := s.db.QueryRowContext(ctx, `SELECT geometry FROM runs WHERE id = ?`, runID).Scan(&geometry)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: id=%d: %w", methodNearest, runID, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", methodNearest, runID, err)
	}
	g, err := energy.ParseGeometry(geometry)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", methodNearest, runID, err)
	}

	rows, err := s.loadPoints(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("%s: id=%d: %w", methodNearest, runID, err)
	}
	if node < 0 || node >= len(rows) {
		return nil, fmt.Errorf("%s: node=%d, n=%d: %w", methodNearest, node, len(rows), ErrNodeOutOfRange)
	}
	if k <= 0 {
		return nil, nil
	}

	q := rows[node]
	out := make([]Neighbor, 0, len(rows)-1)
	for j, r := range rows {
		if j == node {
			continue
		}
		d, err := distance(g, q, r)
		if err != nil {
			return nil, fmt.Errorf("%s: nodes %d,%d: %w", methodNearest, node, j, err)
		}
		out = append(out, Neighbor{Node: j, Distance: d})
	}
	slices.SortFunc(out, func(a, b Neighbor) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return a.Node - b.Node
	})
	if k < len(out) {
		out = out[:k]
	}

	return out, nil
}

func distance(g energy.Geometry, a, b pointRow) (float64, error) {
	if g == energy.GeometryHyperbolic {
		return geom.PoincareDistance(a.point, b.point)
	}
	d := search.Float32s(a.embedding).EuclideanDistance(b.embedding)
	if math.IsNaN(float64(d)) {
		return 0, fmt.Errorf("euclidean distance is NaN: %w", ErrBadEmbedding)
	}

	return float64(d), nil
}

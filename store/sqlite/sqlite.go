// Package sqlite implements store.Store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/supplynet/dataset"
	"github.com/katalvlaran/supplynet/store"
)

// Repository implements store.Store using SQLite.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

var _ store.Store = (*Repository)(nil)

// New opens (creating if needed) the database at dbPath and applies the
// schema. ":memory:" gives a private in-memory database.
func New(dbPath string) (*Repository, error) {
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db, now: time.Now}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS datasets (
		name TEXT PRIMARY KEY,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS nodes (
		dataset TEXT NOT NULL,
		seq INTEGER NOT NULL,
		id TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT '',
		lat REAL NOT NULL DEFAULT 0,
		lng REAL NOT NULL DEFAULT 0,
		city TEXT NOT NULL DEFAULT '',
		capacity REAL NOT NULL DEFAULT 0,
		current_stock REAL,
		current_load REAL,
		risk_level TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (dataset, id),
		FOREIGN KEY (dataset) REFERENCES datasets(name) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS routes (
		dataset TEXT NOT NULL,
		seq INTEGER NOT NULL,
		id TEXT NOT NULL,
		source_id TEXT NOT NULL,
		target_id TEXT NOT NULL,
		route_type TEXT NOT NULL DEFAULT '',
		distance REAL NOT NULL,
		cost REAL NOT NULL,
		duration REAL NOT NULL,
		risk_score REAL NOT NULL,
		PRIMARY KEY (dataset, id),
		FOREIGN KEY (dataset) REFERENCES datasets(name) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_nodes_seq ON nodes(dataset, seq);
	CREATE INDEX IF NOT EXISTS idx_routes_seq ON routes(dataset, seq);
	`

	_, err := r.db.Exec(schema)
	return err
}

// Save validates ds and stores it under ds.Name, replacing any previous
// content of that name in a single transaction.
func (r *Repository) Save(ctx context.Context, ds *dataset.Dataset) error {
	if ds.Name == "" {
		return store.ErrEmptyName
	}
	if err := ds.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteContent(ctx, tx, ds.Name); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO datasets (name, updated_at) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET updated_at = excluded.updated_at
	`, ds.Name, r.now().UTC().Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert dataset: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nodes (dataset, seq, id, name, type, lat, lng, city, capacity, current_stock, current_load, risk_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare node insert: %w", err)
	}
	defer nodeStmt.Close()

	for i, n := range ds.Nodes {
		_, err := nodeStmt.ExecContext(ctx,
			ds.Name, i, n.ID, n.Name, n.Type,
			n.Location.Lat, n.Location.Lng, n.Location.City,
			n.Capacity, nullFloat(n.CurrentStock), nullFloat(n.CurrentLoad), n.RiskLevel,
		)
		if err != nil {
			return fmt.Errorf("failed to insert node %s: %w", n.ID, err)
		}
	}

	routeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO routes (dataset, seq, id, source_id, target_id, route_type, distance, cost, duration, risk_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare route insert: %w", err)
	}
	defer routeStmt.Close()

	for i, rt := range ds.Routes {
		_, err := routeStmt.ExecContext(ctx,
			ds.Name, i, rt.ID, rt.SourceID, rt.TargetID, rt.RouteType,
			rt.Distance, rt.Cost, rt.Duration, rt.RiskScore,
		)
		if err != nil {
			return fmt.Errorf("failed to insert route %s: %w", rt.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Load reads the dataset stored under name, nodes and routes in the order
// they were saved.
func (r *Repository) Load(ctx context.Context, name string) (*dataset.Dataset, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM datasets WHERE name = ?`, name).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", store.ErrDatasetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}

	nodes, err := r.loadNodes(ctx, name)
	if err != nil {
		return nil, err
	}
	routes, err := r.loadRoutes(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dataset.Dataset{Name: name, Nodes: nodes, Routes: routes}, nil
}

// loadNodes and loadRoutes each release their rows before returning; the
// pool holds a single connection.
func (r *Repository) loadNodes(ctx context.Context, name string) ([]dataset.NodeRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, lat, lng, city, capacity, current_stock, current_load, risk_level
		FROM nodes WHERE dataset = ? ORDER BY seq
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	out := []dataset.NodeRecord{}
	for rows.Next() {
		var (
			n           dataset.NodeRecord
			stock, load sql.NullFloat64
		)
		if err := rows.Scan(&n.ID, &n.Name, &n.Type, &n.Location.Lat, &n.Location.Lng, &n.Location.City,
			&n.Capacity, &stock, &load, &n.RiskLevel); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		n.CurrentStock = floatPtr(stock)
		n.CurrentLoad = floatPtr(load)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nodes: %w", err)
	}
	return out, nil
}

func (r *Repository) loadRoutes(ctx context.Context, name string) ([]dataset.RouteRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source_id, target_id, route_type, distance, cost, duration, risk_score
		FROM routes WHERE dataset = ? ORDER BY seq
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	out := []dataset.RouteRecord{}
	for rows.Next() {
		var rt dataset.RouteRecord
		if err := rows.Scan(&rt.ID, &rt.SourceID, &rt.TargetID, &rt.RouteType,
			&rt.Distance, &rt.Cost, &rt.Duration, &rt.RiskScore); err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating routes: %w", err)
	}
	return out, nil
}

// List returns a summary of every stored dataset, ordered by name.
func (r *Repository) List(ctx context.Context) ([]store.Summary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT d.name, d.updated_at,
			(SELECT COUNT(*) FROM nodes n WHERE n.dataset = d.name),
			(SELECT COUNT(*) FROM routes r WHERE r.dataset = d.name)
		FROM datasets d ORDER BY d.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query datasets: %w", err)
	}
	defer rows.Close()

	out := make([]store.Summary, 0)
	for rows.Next() {
		var (
			s       store.Summary
			updated int64
		)
		if err := rows.Scan(&s.Name, &updated, &s.Nodes, &s.Routes); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		s.UpdatedAt = time.Unix(updated, 0).UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating datasets: %w", err)
	}
	return out, nil
}

// Delete removes the dataset stored under name.
func (r *Repository) Delete(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM datasets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", store.ErrDatasetNotFound, name)
	}
	if err := deleteContent(ctx, tx, name); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// deleteContent drops the node and route rows of a dataset. Foreign keys are
// not enforced unless enabled per connection, so rows are removed explicitly.
func deleteContent(ctx context.Context, tx *sql.Tx, name string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM routes WHERE dataset = ?`, name); err != nil {
		return fmt.Errorf("failed to delete routes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM nodes WHERE dataset = ?`, name); err != nil {
		return fmt.Errorf("failed to delete nodes: %w", err)
	}
	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

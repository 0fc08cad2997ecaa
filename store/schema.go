// SPDX-License-Identifier: MIT
// Package: treeembed/store
//
// schema.go — table definitions.

package store

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at INTEGER NOT NULL,
    geometry TEXT NOT NULL,
    n_points INTEGER NOT NULL,
    iterations INTEGER NOT NULL,
    energy REAL NOT NULL,
    config TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS samples (
    run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    iteration INTEGER NOT NULL,
    energy REAL NOT NULL,
    PRIMARY KEY (run_id, iteration)
)`,
	`CREATE TABLE IF NOT EXISTS points (
    run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    node INTEGER NOT NULL,
    parent INTEGER NOT NULL,
    x REAL NOT NULL,
    y REAL NOT NULL,
    embedding BLOB NOT NULL,
    PRIMARY KEY (run_id, node)
)`,
}

// ensureSchema creates the archive tables if they do not already exist.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

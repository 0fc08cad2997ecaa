// Package store archives finished embedding runs in SQLite and answers
// nearest-neighbour queries over a stored layout.
//
// The database is opened through the pure-Go modernc.org/sqlite driver, so
// both file paths and ":memory:" work without cgo. One run is three tables:
//
//	runs     (id, created_at, geometry, n_points, iterations, energy, config)
//	samples  (run_id, iteration, energy)
//	points   (run_id, node, parent, x, y, embedding)
//
// The embedding column carries each node as a little-endian float32 BLOB;
// Nearest ranks Euclidean runs over these vectors and hyperbolic runs by
// Poincaré distance over the exact float64 coordinates.
//
// A Store is safe for concurrent use. It pins the pool to one connection,
// which keeps an in-memory database alive for the lifetime of the Store.
package store

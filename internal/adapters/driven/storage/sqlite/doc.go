// Package sqlite provides the SQLite-backed song library.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Songs are stored one row each; the node sequence is kept
// as a JSON column in the same externally tagged encoding the front-end reads.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each applied version is recorded in
// schema_migrations so reopening a database only runs newer files.
//
// # Data Location
//
// By default, the database is stored at ~/.spevnikovac/data/songs.db
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on SQLite in WAL mode
// with a busy timeout for concurrent access.
package sqlite

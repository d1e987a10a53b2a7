// Package history persists per-run and per-track outcomes in a local
// SQLite database so past extraction runs can be inspected after the
// fact.
package history

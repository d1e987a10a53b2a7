// Package services provides shared plumbing for pipeline components:
// the error taxonomy that distinguishes run-fatal failures from
// per-track failures, and context helpers that carry track and run
// identifiers for logging.
package services

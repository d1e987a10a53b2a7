// Package reconcile matches scanned raw assets against the track
// catalog.
//
// Matching runs in two stages. First, names are normalized and checked
// against the catalog's titles, aliases, and pinned intro/loop names —
// an exact normalized hit resolves directly. Second, names that missed
// are split on recognized segment markers (intro/front vs. loop/climax
// suffixes, bare or parenthesized) and their base name is matched
// against loop-pair entries.
//
// The reconciler never guesses: when two assets claim the same slot the
// entry is reported as ambiguous instead of resolved, and partial
// coverage surfaces as missing/unmatched sets rather than errors.
package reconcile

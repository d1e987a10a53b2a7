// Package catalog defines the canonical soundtrack track list.
//
// The catalog is an immutable, ordered table constructed once at
// startup. Track numbers form a dense 1-based sequence and titles are
// unique after normalization; Load validates both and fails on any
// violation, which is a programming-time defect rather than a runtime
// condition.
//
// Besides number and title, each entry carries the synthesis hints the
// filter-graph builder needs: loop pairing, extra body passes, fade
// windows, volume adjustment, and the inter-track silence gap. Alias
// and segment-name fields form the rule table the reconciler consults
// for asset names that the normalization heuristics alone cannot map.
package catalog

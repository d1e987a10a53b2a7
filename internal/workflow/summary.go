package workflow

import "sort"

// RunSummary aggregates the outcome of one extraction run. All slices
// are sorted ascending before the summary is returned.
type RunSummary struct {
	RunID string

	// Resolved lists track numbers that received a full resolution.
	Resolved []int
	// Encoded lists tracks whose output file was produced this run.
	Encoded []int
	// Skipped lists tracks whose output already existed and was kept.
	Skipped []int
	// Missing lists tracks left without a full resolution.
	Missing []int
	// UnmatchedRaw lists raw asset names no catalog entry claimed.
	UnmatchedRaw []string
	// AmbiguousMatches maps track numbers to ambiguity descriptions.
	AmbiguousMatches map[int]string
	// EncodeFailures maps track numbers to the reason their encode or
	// graph synthesis failed.
	EncodeFailures map[int]string
}

// Succeeded reports whether every catalog entry produced or kept its
// output file.
func (s *RunSummary) Succeeded() bool {
	return len(s.Missing) == 0 &&
		len(s.AmbiguousMatches) == 0 &&
		len(s.EncodeFailures) == 0
}

func (s *RunSummary) sortAll() {
	sort.Ints(s.Resolved)
	sort.Ints(s.Encoded)
	sort.Ints(s.Skipped)
	sort.Ints(s.Missing)
	sort.Strings(s.UnmatchedRaw)
}

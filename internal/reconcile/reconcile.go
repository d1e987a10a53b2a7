package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"ostforge/internal/assetpack"
	"ostforge/internal/catalog"
	"ostforge/internal/services"
	"ostforge/internal/textutil"
)

// Segment names the role a raw asset plays within its track.
type Segment int

const (
	// SegmentWhole is the single clip of a whole-track entry.
	SegmentWhole Segment = iota
	// SegmentIntro is the opening segment of a loop pair.
	SegmentIntro
	// SegmentLoop is the loop body of a loop pair.
	SegmentLoop
)

func (s Segment) String() string {
	switch s {
	case SegmentWhole:
		return "whole"
	case SegmentIntro:
		return "intro"
	case SegmentLoop:
		return "loop"
	default:
		return fmt.Sprintf("segment(%d)", int(s))
	}
}

// ResolvedAsset is one matched asset with its segment role.
type ResolvedAsset struct {
	Asset   assetpack.RawAsset
	Segment Segment
}

// Resolution maps catalog track numbers to their matched assets in
// playback order: the intro segment always precedes the loop body.
type Resolution map[int][]ResolvedAsset

// AmbiguousMatchError reports that multiple assets claimed the same
// catalog slot. The entry is excluded from the resolution; no
// arbitrary pick is made.
type AmbiguousMatchError struct {
	Number int
	Title  string
	Assets []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%v: track %d %q matched by multiple assets: %s",
		services.ErrAmbiguousMatch, e.Number, e.Title, strings.Join(e.Assets, ", "))
}

// Is lets errors.Is recognize the ambiguity marker.
func (e *AmbiguousMatchError) Is(target error) bool {
	return target == services.ErrAmbiguousMatch
}

// Result is the complete reconciliation report for one scan.
type Result struct {
	Resolution Resolution
	// UnmatchedRaw lists raw asset names no catalog entry claimed.
	UnmatchedRaw []string
	// Missing lists track numbers left without a full resolution.
	Missing []int
	// Ambiguous lists per-entry ambiguity failures, ascending by number.
	Ambiguous []*AmbiguousMatchError
}

type index struct {
	wholeNames    map[string]int
	pairBases     map[string]int
	introOverride map[string]int
	loopOverride  map[string]int
}

func buildIndex(cat *catalog.Catalog) index {
	idx := index{
		wholeNames:    make(map[string]int),
		pairBases:     make(map[string]int),
		introOverride: make(map[string]int),
		loopOverride:  make(map[string]int),
	}
	for _, entry := range cat.Entries() {
		names := append([]string{entry.Title}, entry.Aliases...)
		for _, name := range names {
			key := textutil.Normalize(name)
			if entry.Role == catalog.RoleLoopPair {
				idx.pairBases[key] = entry.Number
			} else {
				idx.wholeNames[key] = entry.Number
			}
		}
		if entry.IntroName != "" {
			idx.introOverride[textutil.Normalize(entry.IntroName)] = entry.Number
		}
		if entry.LoopName != "" {
			idx.loopOverride[textutil.Normalize(entry.LoopName)] = entry.Number
		}
	}
	return idx
}

// Resolve matches the scanned assets against the catalog and reports
// the outcome. It raises no error for partial coverage; only the
// report distinguishes resolved, missing, unmatched, and ambiguous.
func Resolve(cat *catalog.Catalog, assets []assetpack.RawAsset) Result {
	idx := buildIndex(cat)

	type slot struct {
		segment Segment
		number  int
	}
	claims := make(map[int]map[Segment][]assetpack.RawAsset)
	claim := func(number int, segment Segment, asset assetpack.RawAsset) {
		if claims[number] == nil {
			claims[number] = make(map[Segment][]assetpack.RawAsset)
		}
		claims[number][segment] = append(claims[number][segment], asset)
	}

	var unmatched []string
	for _, asset := range assets {
		cleaned := cleanName(asset.Name)
		key := textutil.Normalize(cleaned)

		var target slot
		switch {
		case idx.introOverride[key] != 0:
			target = slot{SegmentIntro, idx.introOverride[key]}
		case idx.loopOverride[key] != 0:
			target = slot{SegmentLoop, idx.loopOverride[key]}
		case idx.wholeNames[key] != 0:
			target = slot{SegmentWhole, idx.wholeNames[key]}
		default:
			base, segment, ok := splitSegmentMarker(cleaned)
			if ok {
				if number := idx.pairBases[textutil.Normalize(base)]; number != 0 {
					target = slot{segment, number}
				}
			}
		}
		if target.number == 0 {
			unmatched = append(unmatched, asset.Name)
			continue
		}
		claim(target.number, target.segment, asset)
	}
	sort.Strings(unmatched)

	result := Result{Resolution: make(Resolution), UnmatchedRaw: unmatched}
	for _, entry := range cat.Entries() {
		segments := claims[entry.Number]
		switch entry.Role {
		case catalog.RoleLoopPair:
			resolvePair(&result, entry, segments)
		default:
			resolveWhole(&result, entry, segments)
		}
	}
	return result
}

func resolveWhole(result *Result, entry catalog.Entry, segments map[Segment][]assetpack.RawAsset) {
	candidates := segments[SegmentWhole]
	switch len(candidates) {
	case 0:
		result.Missing = append(result.Missing, entry.Number)
	case 1:
		result.Resolution[entry.Number] = []ResolvedAsset{{Asset: candidates[0], Segment: SegmentWhole}}
	default:
		result.Ambiguous = append(result.Ambiguous, ambiguity(entry, candidates))
	}
}

func resolvePair(result *Result, entry catalog.Entry, segments map[Segment][]assetpack.RawAsset) {
	intros := segments[SegmentIntro]
	loops := segments[SegmentLoop]
	if len(intros) > 1 || len(loops) > 1 {
		result.Ambiguous = append(result.Ambiguous, ambiguity(entry, append(intros, loops...)))
		return
	}
	if len(intros) == 0 || len(loops) == 0 {
		result.Missing = append(result.Missing, entry.Number)
		return
	}
	result.Resolution[entry.Number] = []ResolvedAsset{
		{Asset: intros[0], Segment: SegmentIntro},
		{Asset: loops[0], Segment: SegmentLoop},
	}
}

func ambiguity(entry catalog.Entry, assets []assetpack.RawAsset) *AmbiguousMatchError {
	names := make([]string, 0, len(assets))
	for _, asset := range assets {
		names = append(names, asset.Name)
	}
	sort.Strings(names)
	return &AmbiguousMatchError{Number: entry.Number, Title: entry.Title, Assets: names}
}

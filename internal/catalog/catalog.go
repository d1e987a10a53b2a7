package catalog

import (
	"fmt"
	"sort"

	"ostforge/internal/services"
	"ostforge/internal/textutil"
)

// Role classifies how an entry's audio is assembled.
type Role int

const (
	// RoleWhole entries are produced from a single raw clip.
	RoleWhole Role = iota
	// RoleLoopPair entries are produced from an intro segment followed
	// by a loop-body segment.
	RoleLoopPair
)

func (r Role) String() string {
	switch r {
	case RoleWhole:
		return "whole"
	case RoleLoopPair:
		return "loop-pair"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Fade describes a fade window in seconds. A negative Start is measured
// from the end of the segment; it is resolved against the probed
// segment duration at graph synthesis time. A zero Duration is a sharp
// cut at Start, used to trim trailing silence.
type Fade struct {
	Start    float64
	Duration float64
}

// Entry is one canonical track.
type Entry struct {
	Number int
	Title  string
	Artist string
	Role   Role

	// Aliases are names the game's asset pipeline used for this track
	// where they differ from the title. Compared after normalization.
	Aliases []string
	// IntroName and LoopName pin irregular segment asset names that the
	// intro/loop marker heuristics cannot derive from the title.
	IntroName string
	LoopName  string

	// Passes is how many times the body clip plays (the loop body for
	// pairs, the whole clip otherwise). Zero means a single pass.
	Passes  int
	FadeIn  *Fade
	FadeOut *Fade
	// Volume scales the track; zero means unchanged.
	Volume float64
	// Gap appends trailing silence, in seconds.
	Gap float64
	// LyricsFile names a sidecar text file holding lyrics, relative to
	// the assets directory.
	LyricsFile string
}

// BodyPasses returns how many times the body clip plays, at least one.
func (e Entry) BodyPasses() int {
	if e.Passes <= 0 {
		return 1
	}
	return e.Passes
}

// Catalog is the validated, immutable track table.
type Catalog struct {
	entries []Entry
	byTitle map[string]int
}

// Load builds the compiled-in album catalog, validating its invariants.
func Load() (*Catalog, error) {
	return New(Album())
}

// New validates the provided entries and returns a catalog over them.
func New(entries []Entry) (*Catalog, error) {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Number < ordered[j].Number })

	byTitle := make(map[string]int, len(ordered))
	seenNames := make(map[string]int, len(ordered)*2)

	claim := func(kind, name string, number int) error {
		key := textutil.Normalize(name)
		if key == "" {
			return invariant(fmt.Sprintf("track %d: empty %s", number, kind))
		}
		if prev, ok := seenNames[key]; ok && prev != number {
			return invariant(fmt.Sprintf("track %d: %s %q collides with track %d", number, kind, name, prev))
		}
		seenNames[key] = number
		return nil
	}

	for i, entry := range ordered {
		if entry.Number != i+1 {
			return nil, invariant(fmt.Sprintf("track numbers must be dense and 1-based: position %d holds number %d", i+1, entry.Number))
		}
		if err := claim("title", entry.Title, entry.Number); err != nil {
			return nil, err
		}
		byTitle[textutil.Normalize(entry.Title)] = i
		for _, alias := range entry.Aliases {
			if err := claim("alias", alias, entry.Number); err != nil {
				return nil, err
			}
		}
		if entry.IntroName != "" {
			if err := claim("intro name", entry.IntroName, entry.Number); err != nil {
				return nil, err
			}
		}
		if entry.LoopName != "" {
			if err := claim("loop name", entry.LoopName, entry.Number); err != nil {
				return nil, err
			}
		}
		if entry.Role == RoleWhole && entry.IntroName != "" {
			return nil, invariant(fmt.Sprintf("track %d: intro name on a whole entry", entry.Number))
		}
		if entry.Passes < 0 {
			return nil, invariant(fmt.Sprintf("track %d: negative passes", entry.Number))
		}
		if entry.Gap < 0 {
			return nil, invariant(fmt.Sprintf("track %d: negative gap", entry.Number))
		}
		if entry.FadeOut != nil && entry.FadeOut.Duration < 0 {
			return nil, invariant(fmt.Sprintf("track %d: negative fade-out duration", entry.Number))
		}
		if entry.FadeIn != nil && entry.FadeIn.Duration <= 0 {
			return nil, invariant(fmt.Sprintf("track %d: fade-in requires a positive duration", entry.Number))
		}
	}

	return &Catalog{entries: ordered, byTitle: byTitle}, nil
}

func invariant(message string) error {
	return services.Wrap(services.ErrCatalogInvariant, "catalog", "load", message, nil)
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns all tracks in ascending number order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByNumber looks a track up by its number.
func (c *Catalog) ByNumber(number int) (Entry, bool) {
	if number < 1 || number > len(c.entries) {
		return Entry{}, false
	}
	return c.entries[number-1], true
}

// ByTitle looks a track up by title, compared after normalization.
func (c *Catalog) ByTitle(title string) (Entry, bool) {
	idx, ok := c.byTitle[textutil.Normalize(title)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

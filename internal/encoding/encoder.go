package encoding

import (
	"context"

	"ostforge/internal/filtergraph"
)

// Job is one encoder invocation: a filter graph, the output location,
// and the tag metadata stamped on the result.
type Job struct {
	TrackNumber int
	Title       string
	Artist      string
	DateTag     string
	// Lyrics holds the full lyric text for the LYRICS tag; empty means
	// no tag is written.
	Lyrics string

	Graph      filtergraph.Graph
	OutputPath string
}

// Encoder renders a filter graph into a finished audio file.
type Encoder interface {
	Encode(ctx context.Context, job Job) error
}

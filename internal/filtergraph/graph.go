package filtergraph

import (
	"fmt"

	"ostforge/internal/assetpack"
	"ostforge/internal/services"
)

// Node is one audio filter applied to a single input stream. Nodes in
// an input's chain apply in order.
type Node interface {
	node()
}

// Trim keeps the [Start, End) window of the stream, in seconds.
type Trim struct {
	Start float64
	End   float64
}

// FadeIn ramps the stream up from silence over Duration seconds.
type FadeIn struct {
	Duration float64
}

// FadeOut ramps the stream down starting at Start seconds for Duration
// seconds. Start is always absolute here; negative catalog offsets are
// resolved during synthesis.
type FadeOut struct {
	Start    float64
	Duration float64
}

// Volume scales the stream amplitude by Value.
type Volume struct {
	Value float64
}

func (Trim) node()    {}
func (FadeIn) node()  {}
func (FadeOut) node() {}
func (Volume) node()  {}

// Input is one source stream and its filter chain. An empty chain is a
// passthrough.
type Input struct {
	Asset assetpack.RawAsset
	Chain []Node
}

// Graph describes how a single output track is assembled: the inputs
// are filtered independently, concatenated in order, and followed by
// GapSeconds of silence when nonzero.
type Graph struct {
	TrackNumber int
	Inputs      []Input
	GapSeconds  float64
	// SampleRate is the rate used for the generated trailing silence.
	SampleRate int
}

// BuildError reports an internal consistency failure while building a
// graph. It indicates a resolution that violates the segment ordering
// contract or a fade window that cannot be resolved.
type BuildError struct {
	Number  int
	Title   string
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%v: track %d %q: %s", services.ErrGraphBuild, e.Number, e.Title, e.Message)
}

// Is lets errors.Is recognize the graph build marker.
func (e *BuildError) Is(target error) bool {
	return target == services.ErrGraphBuild
}

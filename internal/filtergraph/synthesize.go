package filtergraph

import (
	"fmt"
	"math"

	"ostforge/internal/assetpack"
	"ostforge/internal/catalog"
	"ostforge/internal/reconcile"
)

// DefaultSilenceRate is the sample rate used for trailing silence when
// no input reports its own rate.
const DefaultSilenceRate = 48000

// Options tunes graph synthesis across a whole run.
type Options struct {
	// ExtraLoopPasses adds body repetitions on top of what the catalog
	// asks for. Zero keeps the catalog's own pass counts.
	ExtraLoopPasses int
}

// Synthesize builds the filter graph for one resolved catalog entry.
// The resolved assets must satisfy the reconciler's ordering contract:
// a single whole clip, or an intro segment followed by a loop body.
func Synthesize(entry catalog.Entry, resolved []reconcile.ResolvedAsset, opts Options) (Graph, error) {
	intro, body, err := splitSegments(entry, resolved)
	if err != nil {
		return Graph{}, err
	}

	passes := entry.BodyPasses() + opts.ExtraLoopPasses
	if passes < 1 {
		passes = 1
	}

	var fadeOutChain []Node
	if entry.FadeOut != nil {
		fadeOutChain, err = fadeOutNodes(entry, body)
		if err != nil {
			return Graph{}, err
		}
	}

	var inputs []Input
	if intro != nil {
		inputs = append(inputs, Input{Asset: *intro, Chain: withVolume(entry, nil)})
	}
	for pass := 0; pass < passes; pass++ {
		var chain []Node
		if pass == 0 && entry.FadeIn != nil {
			chain = append(chain, FadeIn{Duration: entry.FadeIn.Duration})
		}
		if pass == passes-1 {
			chain = append(chain, fadeOutChain...)
		}
		inputs = append(inputs, Input{Asset: body, Chain: withVolume(entry, chain)})
	}

	return Graph{
		TrackNumber: entry.Number,
		Inputs:      inputs,
		GapSeconds:  entry.Gap,
		SampleRate:  silenceRate(inputs),
	}, nil
}

func splitSegments(entry catalog.Entry, resolved []reconcile.ResolvedAsset) (*assetpack.RawAsset, assetpack.RawAsset, error) {
	switch entry.Role {
	case catalog.RoleLoopPair:
		if len(resolved) != 2 {
			return nil, assetpack.RawAsset{}, buildError(entry, fmt.Sprintf("loop pair resolved to %d segments", len(resolved)))
		}
		if resolved[0].Segment != reconcile.SegmentIntro || resolved[1].Segment != reconcile.SegmentLoop {
			return nil, assetpack.RawAsset{}, buildError(entry, fmt.Sprintf("segments out of order: %s, %s", resolved[0].Segment, resolved[1].Segment))
		}
		intro := resolved[0].Asset
		return &intro, resolved[1].Asset, nil
	default:
		if len(resolved) != 1 {
			return nil, assetpack.RawAsset{}, buildError(entry, fmt.Sprintf("whole track resolved to %d segments", len(resolved)))
		}
		if resolved[0].Segment != reconcile.SegmentWhole {
			return nil, assetpack.RawAsset{}, buildError(entry, fmt.Sprintf("unexpected %s segment on a whole track", resolved[0].Segment))
		}
		return nil, resolved[0].Asset, nil
	}
}

// fadeOutNodes resolves the catalog's fade window against the body
// clip and emits the fade plus the trim that drops everything past it.
func fadeOutNodes(entry catalog.Entry, body assetpack.RawAsset) ([]Node, error) {
	start := entry.FadeOut.Start
	if start < 0 {
		duration := body.Duration
		if duration <= 0 || math.IsNaN(duration) {
			return nil, buildError(entry, fmt.Sprintf("fade offset %g needs a probed duration for %s", start, body.Name))
		}
		start += duration
		if start < 0 {
			return nil, buildError(entry, fmt.Sprintf("fade offset %g precedes the start of %s", entry.FadeOut.Start, body.Name))
		}
	}
	return []Node{
		FadeOut{Start: start, Duration: entry.FadeOut.Duration},
		Trim{Start: 0, End: start + entry.FadeOut.Duration},
	}, nil
}

// withVolume prepends the track's volume scaling so it applies before
// any fade shaping.
func withVolume(entry catalog.Entry, chain []Node) []Node {
	if entry.Volume == 0 {
		return chain
	}
	return append([]Node{Volume{Value: entry.Volume}}, chain...)
}

func silenceRate(inputs []Input) int {
	for _, input := range inputs {
		if input.Asset.SampleRate > 0 {
			return input.Asset.SampleRate
		}
	}
	return DefaultSilenceRate
}

func buildError(entry catalog.Entry, message string) *BuildError {
	return &BuildError{Number: entry.Number, Title: entry.Title, Message: message}
}

package encoding

import (
	"testing"

	"ostforge/internal/assetpack"
	"ostforge/internal/filtergraph"
)

func TestRenderFilterComplexPassthroughConcat(t *testing.T) {
	graph := filtergraph.Graph{
		Inputs: []filtergraph.Input{
			{Asset: assetpack.RawAsset{Path: "intro.wav"}},
			{Asset: assetpack.RawAsset{Path: "loop.wav"}},
		},
	}
	got := renderFilterComplex(graph)
	want := "[0][1] concat=n=2:v=0:a=1 [out]"
	if got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestRenderFilterComplexChainsAndSilence(t *testing.T) {
	graph := filtergraph.Graph{
		Inputs: []filtergraph.Input{
			{Asset: assetpack.RawAsset{Path: "body.wav"}},
			{
				Asset: assetpack.RawAsset{Path: "body.wav"},
				Chain: []filtergraph.Node{
					filtergraph.FadeOut{Start: 60, Duration: 5},
					filtergraph.Trim{Start: 0, End: 65},
				},
			},
		},
		GapSeconds: 1,
		SampleRate: 48000,
	}
	got := renderFilterComplex(graph)
	want := "[1] afade=type=out:start_time=60:duration=5 [f1]; " +
		"[f1] atrim=start=0:end=65 [f2]; " +
		"anullsrc=r=48000:duration=1 [silence]; " +
		"[0][f2][silence] concat=n=3:v=0:a=1 [out]"
	if got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
}

func TestRenderNodeFormatsFractionsCompactly(t *testing.T) {
	got := renderNode(filtergraph.FadeOut{Start: 92.5, Duration: 7.75})
	want := "afade=type=out:start_time=92.5:duration=7.75"
	if got != want {
		t.Fatalf("rendered %q, want %q", got, want)
	}
	if got := renderNode(filtergraph.Volume{Value: 0.7}); got != "volume=0.7" {
		t.Fatalf("rendered %q", got)
	}
	if got := renderNode(filtergraph.FadeIn{Duration: 2}); got != "afade=type=in:start_time=0:duration=2" {
		t.Fatalf("rendered %q", got)
	}
}

package filtergraph

import (
	"errors"
	"reflect"
	"testing"

	"ostforge/internal/assetpack"
	"ostforge/internal/catalog"
	"ostforge/internal/reconcile"
	"ostforge/internal/services"
)

func clip(name string, duration float64) assetpack.RawAsset {
	return assetpack.RawAsset{Name: name, Path: "/assets/" + name, Duration: duration, SampleRate: 44100}
}

func whole(asset assetpack.RawAsset) []reconcile.ResolvedAsset {
	return []reconcile.ResolvedAsset{{Asset: asset, Segment: reconcile.SegmentWhole}}
}

func pair(intro, loop assetpack.RawAsset) []reconcile.ResolvedAsset {
	return []reconcile.ResolvedAsset{
		{Asset: intro, Segment: reconcile.SegmentIntro},
		{Asset: loop, Segment: reconcile.SegmentLoop},
	}
}

func TestSynthesizeWholePassthrough(t *testing.T) {
	entry := catalog.Entry{Number: 7, Title: "Ambient", Role: catalog.RoleWhole}
	graph, err := Synthesize(entry, whole(clip("Ambient.wav", 120)), Options{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if graph.TrackNumber != 7 || len(graph.Inputs) != 1 {
		t.Fatalf("graph = %+v", graph)
	}
	if len(graph.Inputs[0].Chain) != 0 {
		t.Errorf("passthrough chain = %+v", graph.Inputs[0].Chain)
	}
	if graph.SampleRate != 44100 {
		t.Errorf("sample rate = %d", graph.SampleRate)
	}
}

func TestSynthesizeLoopPairOrdersIntroFirst(t *testing.T) {
	entry := catalog.Entry{Number: 2, Title: "Loop Song", Role: catalog.RoleLoopPair}
	intro := clip("Loop Song_intro.wav", 10)
	loop := clip("Loop Song_loop.wav", 60)
	graph, err := Synthesize(entry, pair(intro, loop), Options{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(graph.Inputs) != 2 {
		t.Fatalf("inputs = %+v", graph.Inputs)
	}
	if graph.Inputs[0].Asset.Name != intro.Name || graph.Inputs[1].Asset.Name != loop.Name {
		t.Errorf("input order = %q, %q", graph.Inputs[0].Asset.Name, graph.Inputs[1].Asset.Name)
	}
}

func TestSynthesizePassesRepeatBodyAndFadeLastOnly(t *testing.T) {
	entry := catalog.Entry{
		Number:  5,
		Title:   "Battle",
		Role:    catalog.RoleWhole,
		Passes:  2,
		FadeOut: &catalog.Fade{Start: 60, Duration: 5},
		Gap:     1,
	}
	graph, err := Synthesize(entry, whole(clip("Battle.wav", 90)), Options{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(graph.Inputs) != 2 {
		t.Fatalf("inputs = %+v", graph.Inputs)
	}
	if len(graph.Inputs[0].Chain) != 0 {
		t.Errorf("first pass chain = %+v", graph.Inputs[0].Chain)
	}
	want := []Node{
		FadeOut{Start: 60, Duration: 5},
		Trim{Start: 0, End: 65},
	}
	if got := graph.Inputs[1].Chain; !reflect.DeepEqual(got, want) {
		t.Errorf("last pass chain = %+v, want %+v", got, want)
	}
	if graph.GapSeconds != 1 {
		t.Errorf("gap = %g", graph.GapSeconds)
	}
}

func TestSynthesizeNegativeFadeStartResolvesAgainstBodyDuration(t *testing.T) {
	entry := catalog.Entry{
		Number:  9,
		Title:   "Memory",
		Role:    catalog.RoleWhole,
		FadeOut: &catalog.Fade{Start: -8, Duration: 8},
	}
	graph, err := Synthesize(entry, whole(clip("Memory.wav", 100)), Options{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	want := []Node{
		FadeOut{Start: 92, Duration: 8},
		Trim{Start: 0, End: 100},
	}
	if got := graph.Inputs[0].Chain; !reflect.DeepEqual(got, want) {
		t.Errorf("chain = %+v, want %+v", got, want)
	}
}

func TestSynthesizeNegativeFadeStartWithoutDurationFails(t *testing.T) {
	entry := catalog.Entry{
		Number:  9,
		Title:   "Memory",
		Role:    catalog.RoleWhole,
		FadeOut: &catalog.Fade{Start: -8, Duration: 8},
	}
	_, err := Synthesize(entry, whole(clip("Memory.wav", 0)), Options{})
	if !errors.Is(err, services.ErrGraphBuild) {
		t.Fatalf("err = %v", err)
	}
}

func TestSynthesizeSharpCutEmitsZeroDurationFade(t *testing.T) {
	entry := catalog.Entry{
		Number:  49,
		Title:   "Story Background Music",
		Role:    catalog.RoleWhole,
		FadeOut: &catalog.Fade{Start: -3, Duration: 0},
	}
	graph, err := Synthesize(entry, whole(clip("StoryBGM_2.wav", 45)), Options{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	want := []Node{
		FadeOut{Start: 42, Duration: 0},
		Trim{Start: 0, End: 42},
	}
	if got := graph.Inputs[0].Chain; !reflect.DeepEqual(got, want) {
		t.Errorf("chain = %+v, want %+v", got, want)
	}
}

func TestSynthesizeFadeInFirstBodyPassAndVolumeEverywhere(t *testing.T) {
	entry := catalog.Entry{
		Number: 38,
		Title:  "Ark System",
		Role:   catalog.RoleLoopPair,
		Passes: 2,
		FadeIn: &catalog.Fade{Start: 0, Duration: 2},
		Volume: 0.7,
	}
	intro := clip("BootUp.wav", 6)
	loop := clip("AmbiLoop.wav", 30)
	graph, err := Synthesize(entry, pair(intro, loop), Options{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if len(graph.Inputs) != 3 {
		t.Fatalf("inputs = %+v", graph.Inputs)
	}
	if want := []Node{Volume{Value: 0.7}}; !reflect.DeepEqual(graph.Inputs[0].Chain, want) {
		t.Errorf("intro chain = %+v", graph.Inputs[0].Chain)
	}
	if want := []Node{Volume{Value: 0.7}, FadeIn{Duration: 2}}; !reflect.DeepEqual(graph.Inputs[1].Chain, want) {
		t.Errorf("first body chain = %+v", graph.Inputs[1].Chain)
	}
	if want := []Node{Volume{Value: 0.7}}; !reflect.DeepEqual(graph.Inputs[2].Chain, want) {
		t.Errorf("last body chain = %+v", graph.Inputs[2].Chain)
	}
}

func TestSynthesizeExtraLoopPasses(t *testing.T) {
	entry := catalog.Entry{Number: 2, Title: "Loop Song", Role: catalog.RoleLoopPair}
	graph, err := Synthesize(entry, pair(clip("i.wav", 5), clip("l.wav", 20)), Options{ExtraLoopPasses: 2})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	// Intro plus three body passes.
	if len(graph.Inputs) != 4 {
		t.Fatalf("inputs = %d", len(graph.Inputs))
	}
}

func TestSynthesizeRejectsMisorderedSegments(t *testing.T) {
	entry := catalog.Entry{Number: 2, Title: "Loop Song", Role: catalog.RoleLoopPair}
	resolved := []reconcile.ResolvedAsset{
		{Asset: clip("l.wav", 20), Segment: reconcile.SegmentLoop},
		{Asset: clip("i.wav", 5), Segment: reconcile.SegmentIntro},
	}
	_, err := Synthesize(entry, resolved, Options{})
	if !errors.Is(err, services.ErrGraphBuild) {
		t.Fatalf("err = %v", err)
	}

	_, err = Synthesize(entry, whole(clip("l.wav", 20)), Options{})
	if !errors.Is(err, services.ErrGraphBuild) {
		t.Fatalf("single segment err = %v", err)
	}
}

func TestSynthesizeSilenceRateFallback(t *testing.T) {
	entry := catalog.Entry{Number: 1, Title: "Quiet", Role: catalog.RoleWhole, Gap: 1}
	asset := assetpack.RawAsset{Name: "Quiet.wav", Duration: 10}
	graph, err := Synthesize(entry, whole(asset), Options{})
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if graph.SampleRate != DefaultSilenceRate {
		t.Errorf("sample rate = %d", graph.SampleRate)
	}
}

package encoding

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"ostforge/internal/assetpack"
	"ostforge/internal/filtergraph"
	"ostforge/internal/services"
)

func stubCommand(t *testing.T, fake func(ctx context.Context, name string, args ...string) *exec.Cmd) {
	t.Helper()
	original := commandContext
	commandContext = fake
	t.Cleanup(func() { commandContext = original })
}

func testJob() Job {
	return Job{
		TrackNumber: 2,
		Title:       "Loop Song",
		Artist:      "Cosmograph",
		DateTag:     "2024",
		Graph: filtergraph.Graph{
			TrackNumber: 2,
			Inputs: []filtergraph.Input{
				{Asset: assetpack.RawAsset{Path: "/assets/Loop Song_intro.wav"}},
				{Asset: assetpack.RawAsset{Path: "/assets/Loop Song_loop.wav"}},
			},
		},
		OutputPath: "/out/02 - Loop Song.flac",
	}
}

func TestFFmpegEncodeBuildsExpectedInvocation(t *testing.T) {
	var gotName string
	var gotArgs []string
	stubCommand(t, func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		return exec.CommandContext(ctx, "true")
	})

	encoder := NewFFmpeg("", nil)
	if err := encoder.Encode(context.Background(), testJob()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if gotName != "ffmpeg" {
		t.Errorf("binary = %q", gotName)
	}
	joined := strings.Join(gotArgs, " ")
	for _, fragment := range []string{
		"-i /assets/Loop Song_intro.wav",
		"-i /assets/Loop Song_loop.wav",
		"-filter_complex [0][1] concat=n=2:v=0:a=1 [out]",
		"-map [out]",
		"-metadata DATE=2024",
		"-metadata TITLE=Loop Song",
		"-metadata TRACKNUMBER=2",
		"-metadata ARTIST=Cosmograph",
	} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("missing %q in %q", fragment, joined)
		}
	}
	if gotArgs[len(gotArgs)-1] != "/out/02 - Loop Song.flac" {
		t.Errorf("output argument = %q", gotArgs[len(gotArgs)-1])
	}
	if strings.Contains(joined, "LYRICS=") {
		t.Error("lyrics tag written without lyrics")
	}
}

func TestFFmpegEncodeAddsLyricsTag(t *testing.T) {
	var gotArgs []string
	stubCommand(t, func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotArgs = args
		return exec.CommandContext(ctx, "true")
	})

	job := testJob()
	job.Lyrics = "first line\nsecond line"
	encoder := NewFFmpeg("ffmpeg-custom", nil)
	if err := encoder.Encode(context.Background(), job); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(strings.Join(gotArgs, "\x00"), "LYRICS=first line\nsecond line") {
		t.Errorf("lyrics tag missing from %q", gotArgs)
	}
}

func TestFFmpegEncodeWrapsProcessFailure(t *testing.T) {
	stubCommand(t, func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	})

	encoder := NewFFmpeg("ffmpeg", nil)
	err := encoder.Encode(context.Background(), testJob())
	if !errors.Is(err, services.ErrEncode) {
		t.Fatalf("err = %v", err)
	}
}

func TestFFmpegEncodeRejectsEmptyGraph(t *testing.T) {
	encoder := NewFFmpeg("ffmpeg", nil)
	job := testJob()
	job.Graph.Inputs = nil
	if err := encoder.Encode(context.Background(), job); !errors.Is(err, services.ErrEncode) {
		t.Fatalf("err = %v", err)
	}
}

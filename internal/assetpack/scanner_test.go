package assetpack_test

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"ostforge/internal/assetpack"
	"ostforge/internal/services"
)

// writeWAV writes a mono PCM16 clip with the given number of samples.
func writeWAV(t *testing.T, path string, sampleRate, samples int) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()

	encoder := wav.NewEncoder(file, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, samples),
		SourceBitDepth: 16,
	}
	if err := encoder.Write(buf); err != nil {
		t.Fatalf("write wav: %v", err)
	}
	if err := encoder.Close(); err != nil {
		t.Fatalf("close wav: %v", err)
	}
}

func TestDirEntriesFiltersAudio(t *testing.T) {
	root := t.TempDir()
	writeWAV(t, filepath.Join(root, "Main.wav"), 44100, 4410)
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ".hidden.wav"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	container, err := assetpack.NewDir(root)
	if err != nil {
		t.Fatalf("NewDir returned error: %v", err)
	}
	entries, err := container.Entries(assetpack.TypeAudio)
	if err != nil {
		t.Fatalf("Entries returned error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Main.wav" {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	all, err := container.Entries(assetpack.TypeAny)
	if err != nil {
		t.Fatalf("Entries returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries without the audio filter, got %d", len(all))
	}
}

func TestNewDirRejectsMissingRoot(t *testing.T) {
	_, err := assetpack.NewDir(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !errors.Is(err, services.ErrContainerRead) {
		t.Fatalf("expected ErrContainerRead, got %v", err)
	}
}

func TestScanProbesAndSorts(t *testing.T) {
	root := t.TempDir()
	writeWAV(t, filepath.Join(root, "beta.wav"), 48000, 48000)
	writeWAV(t, filepath.Join(root, "alpha.wav"), 44100, 22050)

	container, err := assetpack.NewDir(root)
	if err != nil {
		t.Fatalf("NewDir returned error: %v", err)
	}
	scanner := assetpack.NewScanner(container, assetpack.MediaProber{}, nil)
	assets, err := scanner.Scan(context.Background(), assetpack.TypeAudio)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	if assets[0].Name != "alpha.wav" || assets[1].Name != "beta.wav" {
		t.Fatalf("assets not sorted by name: %+v", assets)
	}
	if assets[0].SampleRate != 44100 {
		t.Fatalf("unexpected sample rate: %d", assets[0].SampleRate)
	}
	if math.Abs(assets[0].Duration-0.5) > 0.01 {
		t.Fatalf("unexpected alpha duration: %v", assets[0].Duration)
	}
	if math.Abs(assets[1].Duration-1.0) > 0.01 {
		t.Fatalf("unexpected beta duration: %v", assets[1].Duration)
	}
}

type failingProber struct{}

func (failingProber) Probe(context.Context, string) (assetpack.ProbeInfo, error) {
	return assetpack.ProbeInfo{}, errors.New("boom")
}

func TestScanKeepsAssetsWhenProbeFails(t *testing.T) {
	root := t.TempDir()
	writeWAV(t, filepath.Join(root, "clip.wav"), 44100, 100)

	container, err := assetpack.NewDir(root)
	if err != nil {
		t.Fatalf("NewDir returned error: %v", err)
	}
	scanner := assetpack.NewScanner(container, failingProber{}, nil)
	assets, err := scanner.Scan(context.Background(), assetpack.TypeAudio)
	if err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if len(assets) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(assets))
	}
	if assets[0].Duration != 0 || assets[0].SampleRate != 0 {
		t.Fatalf("expected unknown stream properties, got %+v", assets[0])
	}
}

func TestScanHonorsCancellation(t *testing.T) {
	root := t.TempDir()
	writeWAV(t, filepath.Join(root, "clip.wav"), 44100, 100)

	container, err := assetpack.NewDir(root)
	if err != nil {
		t.Fatalf("NewDir returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := assetpack.NewScanner(container, nil, nil).Scan(ctx, assetpack.TypeAudio); err == nil {
		t.Fatal("expected cancellation error")
	}
}

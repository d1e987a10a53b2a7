package assetpack

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"

	"ostforge/internal/ffprobe"
)

// ProbeInfo carries the stream properties a probe discovered.
type ProbeInfo struct {
	Duration   float64
	SampleRate int
}

// Prober inspects a clip's stream properties.
type Prober interface {
	Probe(ctx context.Context, path string) (ProbeInfo, error)
}

// MediaProber probes WAV clips natively and delegates everything else
// to ffprobe.
type MediaProber struct {
	FFprobeBinary string
}

// Probe implements Prober.
func (p MediaProber) Probe(ctx context.Context, path string) (ProbeInfo, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		info, err := probeWAV(path)
		if err == nil {
			return info, nil
		}
		// Malformed headers happen in asset dumps; let ffprobe decide.
	}
	result, err := ffprobe.Inspect(ctx, p.FFprobeBinary, path)
	if err != nil {
		return ProbeInfo{}, err
	}
	info := ProbeInfo{SampleRate: result.AudioSampleRate()}
	if seconds := result.DurationSeconds(); !math.IsNaN(seconds) && seconds > 0 {
		info.Duration = seconds
	}
	return info, nil
}

func probeWAV(path string) (ProbeInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return ProbeInfo{}, err
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return ProbeInfo{}, errors.New("not a valid wav file")
	}
	duration, err := decoder.Duration()
	if err != nil {
		return ProbeInfo{}, err
	}
	return ProbeInfo{
		Duration:   duration.Seconds(),
		SampleRate: int(decoder.SampleRate),
	}, nil
}

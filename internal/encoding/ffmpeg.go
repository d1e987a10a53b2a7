package encoding

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"ostforge/internal/logging"
	"ostforge/internal/services"
)

var commandContext = exec.CommandContext

// FFmpeg drives the ffmpeg binary through its command line.
type FFmpeg struct {
	binary string
	logger *slog.Logger
}

// NewFFmpeg returns an encoder backed by the given ffmpeg binary. An
// empty binary falls back to "ffmpeg" on PATH.
func NewFFmpeg(binary string, logger *slog.Logger) *FFmpeg {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &FFmpeg{binary: binary, logger: logger}
}

// Encode renders the job's filter graph into its output file. The
// subprocess inherits no stdin and runs without an artificial timeout;
// cancellation of ctx terminates it.
func (f *FFmpeg) Encode(ctx context.Context, job Job) error {
	if len(job.Graph.Inputs) == 0 {
		return wrapEncode(job, "no inputs in filter graph", nil)
	}
	if job.OutputPath == "" {
		return wrapEncode(job, "no output path", nil)
	}

	argv := buildArgs(job)
	f.logger.Debug("invoking ffmpeg",
		logging.String(logging.FieldComponent, "encoder"),
		logging.Int(logging.FieldTrack, job.TrackNumber),
		logging.String("args", strings.Join(argv, " ")))

	cmd := commandContext(ctx, f.binary, argv...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if detail == "" {
			detail = err.Error()
		}
		return wrapEncode(job, detail, err)
	}
	return nil
}

// buildArgs assembles the full ffmpeg argument list for a job.
func buildArgs(job Job) []string {
	argv := []string{"-nostdin", "-v", "error", "-y"}
	for _, input := range job.Graph.Inputs {
		argv = append(argv, "-i", input.Asset.Path)
	}
	argv = append(argv,
		"-filter_complex", renderFilterComplex(job.Graph),
		"-map", "[out]",
	)
	if job.DateTag != "" {
		argv = append(argv, "-metadata", "DATE="+job.DateTag)
	}
	argv = append(argv,
		"-metadata", "TITLE="+job.Title,
		"-metadata", fmt.Sprintf("TRACKNUMBER=%d", job.TrackNumber),
	)
	if job.Artist != "" {
		argv = append(argv, "-metadata", "ARTIST="+job.Artist)
	}
	if job.Lyrics != "" {
		argv = append(argv, "-metadata", "LYRICS="+job.Lyrics)
	}
	return append(argv, job.OutputPath)
}

func wrapEncode(job Job, message string, err error) error {
	return services.Wrap(services.ErrEncode, "encoder", "encode",
		fmt.Sprintf("track %d %q: %s", job.TrackNumber, job.Title, message), err)
}

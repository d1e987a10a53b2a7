package assetpack

import (
	"context"
	"log/slog"
	"sort"

	"ostforge/internal/logging"
)

// Scanner enumerates and probes the raw assets in a container.
type Scanner struct {
	container Container
	prober    Prober
	logger    *slog.Logger
}

// NewScanner constructs a scanner over the given container.
func NewScanner(container Container, prober Prober, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scanner{container: container, prober: prober, logger: logger}
}

// Scan lists matching entries and probes each one. The result is
// sorted by name so repeated runs over the same container are
// identical. A probe failure downgrades the asset to unknown duration
// rather than failing the scan; only the container listing itself is
// fatal.
func (s *Scanner) Scan(ctx context.Context, filter TypeFilter) ([]RawAsset, error) {
	entries, err := s.container.Entries(filter)
	if err != nil {
		return nil, err
	}

	assets := make([]RawAsset, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		asset := RawAsset{Name: entry.Name, Path: entry.Path}
		if s.prober != nil {
			info, err := s.prober.Probe(ctx, entry.Path)
			if err != nil {
				s.logger.Warn("probe failed; duration unknown",
					logging.Args(logging.String(logging.FieldAsset, entry.Name), logging.Error(err))...)
			} else {
				asset.Duration = info.Duration
				asset.SampleRate = info.SampleRate
			}
		}
		assets = append(assets, asset)
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
	return assets, nil
}

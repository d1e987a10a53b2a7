package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"ostforge/internal/assetpack"
	"ostforge/internal/catalog"
	"ostforge/internal/config"
	"ostforge/internal/encoding"
	"ostforge/internal/filtergraph"
	"ostforge/internal/history"
	"ostforge/internal/logging"
	"ostforge/internal/reconcile"
	"ostforge/internal/services"
	"ostforge/internal/textutil"
)

// Manager drives one full extraction run: scan, reconcile, synthesize,
// then encode each resolved track through a bounded worker pool.
type Manager struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	scanner *assetpack.Scanner
	encoder encoding.Encoder
	store   *history.Store
	logger  *slog.Logger
}

// NewManager wires a manager from its collaborators. The history store
// may be nil, in which case outcomes are not persisted.
func NewManager(cfg *config.Config, cat *catalog.Catalog, scanner *assetpack.Scanner, encoder encoding.Encoder, store *history.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		cfg:     cfg,
		catalog: cat,
		scanner: scanner,
		encoder: encoder,
		store:   store,
		logger:  logger,
	}
}

type trackJob struct {
	entry      catalog.Entry
	job        encoding.Job
	skipReason string
}

type trackResult struct {
	number  int
	title   string
	output  string
	skipped bool
	err     error
}

// Run executes the pipeline once. Per-track failures are recorded in
// the summary and do not stop the run; only a container read failure
// aborts before any track is processed.
func (m *Manager) Run(ctx context.Context) (*RunSummary, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	startedAt := time.Now()

	logger := m.logger.With(logging.String(logging.FieldRunID, runID))
	logger.Info("starting extraction run",
		logging.String(logging.FieldComponent, "workflow"),
		logging.Int("tracks", m.catalog.Len()))

	assets, err := m.scanner.Scan(ctx, assetpack.TypeAudio)
	if err != nil {
		return nil, err
	}

	resolution := reconcile.Resolve(m.catalog, assets)
	summary := &RunSummary{
		RunID:            runID,
		Missing:          resolution.Missing,
		UnmatchedRaw:     resolution.UnmatchedRaw,
		AmbiguousMatches: make(map[int]string),
		EncodeFailures:   make(map[int]string),
	}
	for _, ambiguous := range resolution.Ambiguous {
		summary.AmbiguousMatches[ambiguous.Number] = ambiguous.Error()
		logger.Warn("ambiguous match",
			logging.String(logging.FieldComponent, "reconciler"),
			logging.Int(logging.FieldTrack, ambiguous.Number),
			logging.Error(ambiguous))
	}
	for _, name := range summary.UnmatchedRaw {
		logger.Debug("unmatched asset",
			logging.String(logging.FieldComponent, "reconciler"),
			logging.String(logging.FieldAsset, name))
	}

	if m.store != nil {
		if err := m.store.BeginRun(ctx, runID, startedAt); err != nil {
			logger.Warn("history unavailable", logging.Error(err))
		}
	}

	jobs := m.prepareJobs(logger, summary, resolution.Resolution)
	m.encodeAll(ctx, logger, summary, jobs)

	summary.sortAll()
	if m.store != nil {
		finished := history.Run{
			ID:         runID,
			StartedAt:  startedAt,
			FinishedAt: time.Now(),
			Resolved:   len(summary.Resolved),
			Missing:    len(summary.Missing),
			Unmatched:  len(summary.UnmatchedRaw),
			Failures:   len(summary.EncodeFailures),
		}
		if err := m.store.FinishRun(ctx, finished); err != nil {
			logger.Warn("history update failed", logging.Error(err))
		}
	}

	logger.Info("extraction run finished",
		logging.String(logging.FieldComponent, "workflow"),
		logging.Int("encoded", len(summary.Encoded)),
		logging.Int("skipped", len(summary.Skipped)),
		logging.Int("missing", len(summary.Missing)),
		logging.Int("failures", len(summary.EncodeFailures)),
		logging.Duration("elapsed", time.Since(startedAt)))
	return summary, nil
}

// prepareJobs synthesizes graphs for every resolved entry in ascending
// track order. Synthesis failures are recorded and skipped here so the
// worker pool only sees runnable jobs.
func (m *Manager) prepareJobs(logger *slog.Logger, summary *RunSummary, resolution reconcile.Resolution) []trackJob {
	opts := filtergraph.Options{ExtraLoopPasses: m.cfg.Workflow.ExtraLoopPasses}
	var jobs []trackJob

	for _, entry := range m.catalog.Entries() {
		resolved, ok := resolution[entry.Number]
		if !ok {
			continue
		}
		summary.Resolved = append(summary.Resolved, entry.Number)

		graph, err := filtergraph.Synthesize(entry, resolved, opts)
		if err != nil {
			summary.EncodeFailures[entry.Number] = err.Error()
			logger.Error("graph synthesis failed",
				logging.String(logging.FieldComponent, "synthesizer"),
				logging.Int(logging.FieldTrack, entry.Number),
				logging.Error(err))
			continue
		}

		job := encoding.Job{
			TrackNumber: entry.Number,
			Title:       entry.Title,
			Artist:      entry.Artist,
			DateTag:     m.cfg.Output.DateTag,
			Graph:       graph,
			OutputPath:  m.outputPath(entry),
		}
		if entry.LyricsFile != "" {
			lyrics, err := os.ReadFile(filepath.Join(m.cfg.Paths.AssetsDir, entry.LyricsFile))
			if err != nil {
				logger.Warn("lyrics sidecar unreadable",
					logging.Int(logging.FieldTrack, entry.Number),
					logging.Error(err))
			} else {
				job.Lyrics = string(lyrics)
			}
		}

		var skipReason string
		if !m.cfg.Output.OverwriteExisting {
			if _, err := os.Stat(job.OutputPath); err == nil {
				skipReason = "output exists"
			}
		}
		jobs = append(jobs, trackJob{entry: entry, job: job, skipReason: skipReason})
	}
	return jobs
}

// encodeAll runs the job list through a bounded worker pool. Jobs are
// dispatched in ascending track order and results are merged into the
// summary at a single point. Cancellation stops dispatch; jobs already
// running finish or fail on their own.
func (m *Manager) encodeAll(ctx context.Context, logger *slog.Logger, summary *RunSummary, jobs []trackJob) {
	workers := m.cfg.Workflow.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if len(jobs) == 0 {
		return
	}

	pending := make(chan trackJob)
	results := make(chan trackResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range pending {
				results <- m.runJob(ctx, job)
			}
		}()
	}

	go func() {
		defer func() {
			wg.Wait()
			close(results)
		}()
		for i, job := range jobs {
			select {
			case pending <- job:
			case <-ctx.Done():
				close(pending)
				// Jobs never handed to a worker are still accounted
				// for, as canceled, rather than silently dropped.
				for _, rest := range jobs[i:] {
					results <- trackResult{
						number: rest.entry.Number,
						title:  rest.entry.Title,
						output: rest.job.OutputPath,
						err:    ctx.Err(),
					}
				}
				return
			}
		}
		close(pending)
	}()

	for result := range results {
		m.recordResult(ctx, logger, summary, result)
	}
}

func (m *Manager) runJob(ctx context.Context, job trackJob) trackResult {
	result := trackResult{number: job.entry.Number, title: job.entry.Title, output: job.job.OutputPath}
	if job.skipReason != "" {
		result.skipped = true
		return result
	}
	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}
	trackCtx := services.WithTrack(ctx, job.entry.Number)
	result.err = m.encoder.Encode(trackCtx, job.job)
	return result
}

func (m *Manager) recordResult(ctx context.Context, logger *slog.Logger, summary *RunSummary, result trackResult) {
	outcome := history.TrackOutcome{
		RunID:      summary.RunID,
		Number:     result.number,
		Title:      result.title,
		OutputPath: result.output,
		FinishedAt: time.Now(),
	}
	switch {
	case result.skipped:
		summary.Skipped = append(summary.Skipped, result.number)
		outcome.Status = history.StatusSkipped
		logger.Info("output exists, skipping",
			logging.String(logging.FieldComponent, "workflow"),
			logging.Int(logging.FieldTrack, result.number),
			logging.String(logging.FieldTitle, result.title))
	case result.err != nil:
		summary.EncodeFailures[result.number] = result.err.Error()
		outcome.Status = history.StatusFailed
		outcome.Detail = result.err.Error()
		logger.Error("encode failed",
			logging.String(logging.FieldComponent, "encoder"),
			logging.Int(logging.FieldTrack, result.number),
			logging.String(logging.FieldTitle, result.title),
			logging.Error(result.err))
	default:
		summary.Encoded = append(summary.Encoded, result.number)
		outcome.Status = history.StatusEncoded
		logger.Info("track encoded",
			logging.String(logging.FieldComponent, "encoder"),
			logging.Int(logging.FieldTrack, result.number),
			logging.String(logging.FieldTitle, result.title),
			logging.String("output", result.output))
	}
	if m.store != nil {
		if err := m.store.RecordTrack(ctx, outcome); err != nil {
			logger.Warn("history update failed",
				logging.Int(logging.FieldTrack, result.number),
				logging.Error(err))
		}
	}
}

// outputPath builds the deterministic output filename for an entry.
func (m *Manager) outputPath(entry catalog.Entry) string {
	name := fmt.Sprintf("%02d - %s.%s", entry.Number, textutil.SanitizeFileName(entry.Title), m.cfg.Output.Extension)
	return filepath.Join(m.cfg.Paths.OutputDir, name)
}

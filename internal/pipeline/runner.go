// Package pipeline orchestrates the per-file flow: ingest, extract,
// clean, accumulate. Each file is processed independently; a failure in
// one file's extraction or cleaning never aborts the rest of the batch.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"gridlift/internal/cleaning"
	"gridlift/internal/extract"
	"gridlift/internal/ingest"
	"gridlift/pkg/contracts/domain"
)

// Result is the outcome of processing one source grid.
type Result struct {
	// Source identifies the grid: the file name, suffixed with the
	// sheet name for multi-sheet workbooks.
	Source string

	// Extracted is the raw extraction result, untouched by cleaning.
	Extracted domain.ExtractedData

	// Table is the cleaned core, or the raw core when cleaning failed.
	Table domain.Table

	// CleanErr records a skipped cleaning step; the table passed
	// through unmodified.
	CleanErr error
}

// Batch accumulates results across one run, keyed and ordered by source.
type Batch struct {
	ID       string
	Results  []Result
	Tables   *domain.NamedTables
	Metadata map[string]*domain.Metadata
}

// Config tunes a Runner.
type Config struct {
	Extract extract.Options
	Plan    cleaning.Plan
	// Workers bounds concurrent file reads. Processing itself is
	// sequential and synchronous.
	Workers int
}

// Runner drives the extraction pipeline over batches of files.
type Runner struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	extractor *extract.Extractor
	registry  *cleaning.Registry
	plan      cleaning.Plan
	workers   int
}

// NewRunner creates a runner. A nil logger falls back to slog.Default().
func NewRunner(logger *slog.Logger, cfg Config) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		logger:    logger,
		tracer:    otel.Tracer("gridlift/pipeline"),
		extractor: extract.NewExtractor(logger, cfg.Extract),
		registry:  cleaning.DefaultRegistry(),
		plan:      cfg.Plan,
		workers:   workers,
	}
}

// Registry exposes the runner's cleaner registry so callers can add
// custom cleaners before running.
func (r *Runner) Registry() *cleaning.Registry {
	return r.registry
}

// Process runs extraction and cleaning for a single source grid. This
// is the boundary contract: one call per logical table, no state
// retained between calls.
func (r *Runner) Process(ctx context.Context, source string, grid domain.Grid) Result {
	ctx, span := r.tracer.Start(ctx, "pipeline.process",
		trace.WithAttributes(attribute.String("source", source)))
	defer span.End()

	extracted := r.extractor.CoreData(grid)
	for _, w := range extracted.Warnings {
		r.logger.WarnContext(ctx, "extraction warning",
			slog.String("source", source),
			slog.String("warning", w))
	}
	r.logger.InfoContext(ctx, "extracted core data",
		slog.String("source", source),
		slog.Int("rows", extracted.Core.RowCount()),
		slog.Int("columns", extracted.Core.ColCount()),
		slog.Float64("confidence", extracted.Confidence))

	result := Result{Source: source, Extracted: extracted}

	cleaned, err := cleaning.Clean(extracted.Core, r.plan, r.registry, source)
	if err != nil {
		// Fail closed per table: keep the uncleaned core and move on.
		r.logger.ErrorContext(ctx, "cleaning failed, keeping uncleaned table",
			slog.String("source", source),
			slog.Any("error", err))
		result.Table = extracted.Core.Clone()
		result.CleanErr = err
		return result
	}

	result.Table = cleaned
	return result
}

// Run ingests the given files with bounded concurrency, then processes
// every decoded grid in file order. Unreadable files are logged and
// skipped; Run fails only when the context is canceled.
func (r *Runner) Run(ctx context.Context, files []string) (*Batch, error) {
	batch := &Batch{
		ID:       uuid.New().String(),
		Tables:   domain.NewNamedTables(),
		Metadata: make(map[string]*domain.Metadata),
	}
	logger := r.logger.With(slog.String("batch_id", batch.ID))
	logger.Info("starting batch", slog.Int("files", len(files)))

	ctx, span := r.tracer.Start(ctx, "pipeline.run",
		trace.WithAttributes(
			attribute.String("batch_id", batch.ID),
			attribute.Int("files", len(files))))
	defer span.End()

	sheets := make([][]ingest.Sheet, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			decoded, err := ingest.ReadFile(path)
			if err != nil {
				logger.Error("skipping unreadable file",
					slog.String("file", path),
					slog.Any("error", err))
				return nil
			}
			sheets[i] = decoded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s canceled: %w", batch.ID, err)
	}

	for i, path := range files {
		for _, sheet := range sheets[i] {
			source := sourceKey(path, sheet.Name, len(sheets[i]))
			result := r.Process(ctx, source, sheet.Grid)
			batch.Results = append(batch.Results, result)
			batch.Tables.Set(source, result.Table)
			batch.Metadata[source] = result.Extracted.Metadata
		}
	}

	logger.Info("batch complete",
		slog.Int("tables", batch.Tables.Len()))
	return batch, nil
}

// sourceKey names one grid: the bare file name, plus the sheet name for
// workbooks with more than one sheet.
func sourceKey(path, sheet string, sheetCount int) string {
	name := filepath.Base(path)
	if sheetCount > 1 {
		return name + ":" + sheet
	}
	return name
}

// Command gridlift extracts core data tables from messy spreadsheet and
// CSV files, cleans them, and optionally combines them into one output
// table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gridlift/internal/cleaning"
	"gridlift/internal/combine"
	"gridlift/internal/config"
	"gridlift/internal/exporter"
	"gridlift/internal/extract"
	"gridlift/internal/infrastructure"
	"gridlift/internal/ingest"
	"gridlift/internal/pipeline"
)

func main() {
	configFile := flag.String("config", "gridlift.yaml", "path to YAML config file")
	inDir := flag.String("in", "", "input directory (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	preset := flag.String("preset", "", "cleaning preset: none, minimal, standard, aggressive (overrides config)")
	addSource := flag.Bool("add-source", false, "add a _source column to the combined output")
	includeMeta := flag.String("include-metadata", "", "comma-separated metadata keys to surface as columns in the combined output")
	noCombine := flag.Bool("no-combine", false, "skip the combination stage")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *inDir != "" {
		cfg.Paths.InputDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}
	if *preset != "" {
		cfg.Pipeline.Preset = *preset
	}
	if *addSource {
		cfg.Combine.AddSource = true
	}
	if *includeMeta != "" {
		cfg.Combine.IncludeMetadata = strings.Split(*includeMeta, ",")
	}
	if *noCombine {
		cfg.Combine.Enabled = false
	}

	logger := infrastructure.InitializeLogger(cfg.Logging)

	ctx := context.Background()
	if cfg.Pipeline.Tracing {
		shutdown, err := infrastructure.InitializeTracing(ctx, os.Stderr)
		if err != nil {
			logger.Error("Failed to initialize tracing", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("Trace shutdown failed", "error", err)
			}
		}()
	}

	if err := run(ctx, logger, cfg); err != nil {
		logger.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	discovery := ingest.NewDiscovery("")
	files, err := discovery.FindTabularFiles(cfg.Paths.InputDir)
	if err != nil {
		return fmt.Errorf("discovering input files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No input files found", slog.String("dir", cfg.Paths.InputDir))
		return nil
	}

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}

	runner := pipeline.NewRunner(logger, pipeline.Config{
		Extract: extract.Options{
			RowThreshold: cfg.Pipeline.RowThreshold,
			ColThreshold: cfg.Pipeline.ColThreshold,
			GapTolerance: cfg.Pipeline.GapTolerance,
		},
		Plan:    cleaning.Plan{Preset: cfg.Pipeline.Preset},
		Workers: cfg.Pipeline.Workers,
	})

	batch, err := runner.Run(ctx, paths)
	if err != nil {
		return err
	}

	writer := exporter.NewCSVWriter(cfg.Paths.OutputDir)
	for _, result := range batch.Results {
		name := outputName(result.Source)
		if err := writer.WriteTable(name, result.Table, exporter.WriteOptions{BOMPrefix: true}); err != nil {
			logger.Error("Failed to write table",
				slog.String("source", result.Source),
				slog.Any("error", err))
		}
	}

	if !cfg.Combine.Enabled || batch.Tables.Len() == 0 {
		return nil
	}

	combined, err := combine.Tables(batch.Tables, combine.Options{
		AddSource:       cfg.Combine.AddSource,
		IgnoreIndex:     cfg.Combine.IgnoreIndex,
		Metadata:        batch.Metadata,
		IncludeMetadata: cfg.Combine.IncludeMetadata,
	})
	if err != nil {
		return fmt.Errorf("combining tables: %w", err)
	}

	return writer.WriteTable("combined.csv", combined, exporter.WriteOptions{
		BOMPrefix:    true,
		IncludeIndex: !cfg.Combine.IgnoreIndex,
	})
}

// outputName maps a source key to its per-source CSV file name, keeping
// workbook sheets distinct.
func outputName(source string) string {
	file, sheet, _ := strings.Cut(source, ":")
	if ext := strings.LastIndex(file, "."); ext > 0 {
		file = file[:ext]
	}
	if sheet != "" {
		file += "_" + sheet
	}
	return strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(file) + ".csv"
}

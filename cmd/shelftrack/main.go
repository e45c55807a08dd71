package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/shelftrack/shelftrack/internal/classify"
	"github.com/shelftrack/shelftrack/internal/common"
	"github.com/shelftrack/shelftrack/internal/export"
	"github.com/shelftrack/shelftrack/internal/extract"
	"github.com/shelftrack/shelftrack/internal/ner"
	"github.com/shelftrack/shelftrack/internal/ocr"
	"github.com/shelftrack/shelftrack/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir         = flag.String("dir", "", "directory of product images to process (required)")
		packedOut   = flag.String("packed-out", "", "packed products XLSX path (overrides PACKED_XLSX)")
		unpackedOut = flag.String("unpacked-out", "", "unpacked produce XLSX path (overrides UNPACKED_XLSX)")
		workers     = flag.Int("workers", 0, "concurrent workers (overrides BATCH_WORKERS)")
		debug       = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *packedOut != "" {
		cfg.Workbook.PackedPath = *packedOut
	}
	if *unpackedOut != "" {
		cfg.Workbook.UnpackedPath = *unpackedOut
	}
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Wire external model adapters
	classifier := classify.NewExecClassifier(classify.Config{
		ClassifierCmd: cfg.Models.ClassifierCmd,
		FreshnessCmd:  cfg.Models.FreshnessCmd,
		Timeout:       cfg.Models.Timeout,
	}, logger)
	engine := ocr.NewEngine(ocr.Config{
		Command:  cfg.OCR.Command,
		Language: cfg.OCR.Language,
		Timeout:  cfg.OCR.Timeout,
	}, logger)

	extractor := extract.NewExtractor(logger, ner.NewProseRecognizer())

	// Open workbooks (recreated if corrupted)
	packed, err := export.OpenStore(cfg.Workbook.PackedPath, "Packed", export.PackedHeaders, logger)
	if err != nil {
		logger.Error("failed to open packed workbook", "error", err)
		os.Exit(1)
	}
	defer packed.Close()
	unpacked, err := export.OpenStore(cfg.Workbook.UnpackedPath, "Unpacked", export.UnpackedHeaders, logger)
	if err != nil {
		logger.Error("failed to open unpacked workbook", "error", err)
		os.Exit(1)
	}
	defer unpacked.Close()

	processor := pipeline.NewProcessor(logger, classifier, classifier, engine, extractor, packed, unpacked, cfg.Batch.Workers)

	logger.Info("starting batch", "dir", *dir, "workers", cfg.Batch.Workers)
	stats, err := processor.Run(ctx, *dir)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files scanned: %d\n", stats.Scanned)
	fmt.Printf("- Images matched: %d\n", stats.Matched)
	fmt.Printf("- Processed: %d\n", stats.Succeeded)
	fmt.Printf("- Failures: %d\n", stats.Failed)
	fmt.Printf("- Packed output: %s\n", cfg.Workbook.PackedPath)
	fmt.Printf("- Unpacked output: %s\n", cfg.Workbook.UnpackedPath)
}

package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shelftrack/shelftrack/internal/runner"
)

// TextExtractor is the OCR collaborator contract: raw label text for an
// image path. The engine itself is an external process.
type TextExtractor interface {
	Extract(ctx context.Context, imagePath string) (string, error)
}

type Config struct {
	Command  string // binary name or absolute path; if empty -> "shelftrack-ocr"
	Language string // default "en"
	Timeout  time.Duration
}

// Engine shells out to the OCR command, which prints recognized text lines
// to stdout.
type Engine struct {
	cfg    Config
	runner runner.Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Command == "" {
		cfg.Command = "shelftrack-ocr"
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	return &Engine{cfg: cfg, runner: runner.NewExec(logger), logger: logger}
}

// WithRunner swaps the command runner; tests use this to stub the engine.
func (e *Engine) WithRunner(r runner.Runner) *Engine {
	e.runner = r
	return e
}

func (e *Engine) Extract(ctx context.Context, imagePath string) (string, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	out, _, err := e.runner.Run(ctx, e.cfg.Command, "--lang", e.cfg.Language, imagePath)
	if err != nil {
		return "", fmt.Errorf("ocr %s: %w", imagePath, err)
	}

	text := string(out)
	if strings.TrimSpace(text) == "" {
		e.logger.Warn("ocr.empty_text", "path", imagePath)
	}
	e.logger.Debug("ocr.ok",
		"path", imagePath,
		"bytes", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

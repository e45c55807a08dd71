package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shelftrack/shelftrack/constants"
	"github.com/shelftrack/shelftrack/internal/runner"
)

// ObjectClassifier is the image classification collaborator: packed item vs.
// one of the produce labels. The model itself runs as an external process.
type ObjectClassifier interface {
	Classify(ctx context.Context, imagePath string) (constants.Label, error)
}

// FreshnessResult is what the freshness collaborator yields for a produce
// image: the predicted class and the shelf life derived from its confidence.
type FreshnessResult struct {
	Class         constants.FreshnessClass
	Confidence    float64
	ShelfLifeDays int
}

// FreshnessClassifier is the freshness model collaborator.
type FreshnessClassifier interface {
	ClassifyFreshness(ctx context.Context, imagePath string) (FreshnessResult, error)
}

type Config struct {
	ClassifierCmd string
	FreshnessCmd  string
	Timeout       time.Duration
}

// ExecClassifier shells out to the model commands. Each prints a single line
// "<label> <confidence>" to stdout.
type ExecClassifier struct {
	cfg    Config
	runner runner.Runner
	logger *slog.Logger
}

func NewExecClassifier(cfg Config, logger *slog.Logger) *ExecClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ClassifierCmd == "" {
		cfg.ClassifierCmd = "shelftrack-classify"
	}
	if cfg.FreshnessCmd == "" {
		cfg.FreshnessCmd = "shelftrack-freshness"
	}
	return &ExecClassifier{cfg: cfg, runner: runner.NewExec(logger), logger: logger}
}

// WithRunner swaps the command runner; tests use this to stub the models.
func (c *ExecClassifier) WithRunner(r runner.Runner) *ExecClassifier {
	c.runner = r
	return c
}

func (c *ExecClassifier) Classify(ctx context.Context, imagePath string) (constants.Label, error) {
	out, err := c.run(ctx, c.cfg.ClassifierCmd, imagePath)
	if err != nil {
		return "", err
	}
	raw, _, err := splitPrediction(out)
	if err != nil {
		return "", fmt.Errorf("classify %s: %w", imagePath, err)
	}
	label, ok := constants.CanonicalLabel(raw)
	if !ok {
		return "", fmt.Errorf("classify %s: unknown label %q", imagePath, raw)
	}
	c.logger.Debug("classify.ok", "path", imagePath, "label", label)
	return label, nil
}

func (c *ExecClassifier) ClassifyFreshness(ctx context.Context, imagePath string) (FreshnessResult, error) {
	out, err := c.run(ctx, c.cfg.FreshnessCmd, imagePath)
	if err != nil {
		return FreshnessResult{}, err
	}
	raw, conf, err := splitPrediction(out)
	if err != nil {
		return FreshnessResult{}, fmt.Errorf("freshness %s: %w", imagePath, err)
	}
	class := constants.FreshnessClass(strings.ToLower(raw))
	res := FreshnessResult{
		Class:         class,
		Confidence:    conf,
		ShelfLifeDays: DeriveShelfLife(class, conf),
	}
	c.logger.Debug("freshness.ok",
		"path", imagePath, "class", class,
		"confidence", conf, "shelf_life_days", res.ShelfLifeDays,
	)
	return res, nil
}

func (c *ExecClassifier) run(ctx context.Context, cmd, imagePath string) ([]byte, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}
	out, _, err := c.runner.Run(ctx, cmd, imagePath)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", cmd, err)
	}
	return out, nil
}

// splitPrediction parses the "<label> <confidence>" line the model commands
// print. A missing confidence defaults to 1.0.
func splitPrediction(out []byte) (string, float64, error) {
	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return "", 0, fmt.Errorf("empty model output")
	}
	if len(fields) == 1 {
		return fields[0], 1.0, nil
	}
	conf, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad confidence %q: %w", fields[len(fields)-1], err)
	}
	return strings.Join(fields[:len(fields)-1], " "), conf, nil
}

// DeriveShelfLife scales the class's base shelf life by confidence band:
// above 0.8 the full base, 0.5-0.8 at 70%, 0.2-0.5 at 40%, below that a
// single day. Rotten classes get zero.
func DeriveShelfLife(class constants.FreshnessClass, confidence float64) int {
	if !class.IsFresh() {
		return 0
	}
	base := constants.BaseShelfLifeDays[class]
	switch {
	case confidence > 0.8:
		return base
	case confidence > 0.5:
		return int(float64(base) * 0.7)
	case confidence > 0.2:
		return int(float64(base) * 0.4)
	default:
		return 1
	}
}

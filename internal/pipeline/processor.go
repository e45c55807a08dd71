package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shelftrack/shelftrack/internal/classify"
	"github.com/shelftrack/shelftrack/internal/export"
	"github.com/shelftrack/shelftrack/internal/extract"
	"github.com/shelftrack/shelftrack/internal/ocr"
)

// Processor coordinates classification, OCR, extraction and workbook rows
// for a batch of product images.
type Processor struct {
	logger     *slog.Logger
	classifier classify.ObjectClassifier
	freshness  classify.FreshnessClassifier
	textEngine ocr.TextExtractor
	extractor  *extract.Extractor
	packed     *export.Store
	unpacked   *export.Store
	workers    int
}

func NewProcessor(
	logger *slog.Logger,
	classifier classify.ObjectClassifier,
	freshness classify.FreshnessClassifier,
	textEngine ocr.TextExtractor,
	extractor *extract.Extractor,
	packed, unpacked *export.Store,
	workers int,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 1
	}
	return &Processor{
		logger:     logger,
		classifier: classifier,
		freshness:  freshness,
		textEngine: textEngine,
		extractor:  extractor,
		packed:     packed,
		unpacked:   unpacked,
		workers:    workers,
	}
}

// BatchStats summarizes one Run.
type BatchStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// Run processes every image under root with bounded concurrency, then saves
// both workbooks. Per-item failures are logged and counted, never fatal.
func (p *Processor) Run(ctx context.Context, root string) (BatchStats, error) {
	paths, walk, err := ListImages(root)
	if err != nil {
		return BatchStats{}, fmt.Errorf("scan %s: %w", root, err)
	}
	stats := BatchStats{Scanned: walk.Scanned, Matched: walk.Matched}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	var succeeded, failed atomic.Uint32

	for _, path := range paths {
		g.Go(func() error {
			if err := p.ProcessItem(gctx, path); err != nil {
				p.logger.Error("pipeline.item.failed", "path", path, "error", err)
				failed.Add(1)
				return nil // isolate: keep the batch going
			}
			succeeded.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}
	stats.Succeeded = succeeded.Load()
	stats.Failed = failed.Load()

	if err := p.packed.Save(); err != nil {
		return stats, err
	}
	if err := p.unpacked.Save(); err != nil {
		return stats, err
	}

	p.logger.Info("pipeline.batch.done",
		"scanned", stats.Scanned, "matched", stats.Matched,
		"succeeded", stats.Succeeded, "failed", stats.Failed,
	)
	return stats, nil
}

// ProcessItem classifies one image and routes it: packed items go through
// OCR and label-field extraction, produce goes through the freshness model.
// The appended workbook row is the item's durable record.
func (p *Processor) ProcessItem(ctx context.Context, path string) error {
	itemID := uuid.New()
	p.logger.Info("pipeline.item.start", "item_id", itemID, "path", path)

	label, err := p.classifier.Classify(ctx, path)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	if label.IsPacked() {
		return p.processPacked(ctx, itemID, path)
	}
	return p.processProduce(ctx, itemID, path)
}

func (p *Processor) processPacked(ctx context.Context, itemID uuid.UUID, path string) error {
	text, err := p.textEngine.Extract(ctx, path)
	if err != nil {
		return fmt.Errorf("ocr: %w", err)
	}

	rec, err := p.extractor.Extract(ctx, text)
	if err != nil {
		return fmt.Errorf("extract fields: %w", err)
	}

	shelfLife := ""
	if rec.ShelfLife != nil {
		shelfLife = rec.ShelfLife.String()
	}
	quantity := ""
	if rec.Quantity != nil {
		quantity = rec.Quantity.String()
	}
	var mrp any = ""
	if rec.MRP != nil {
		mrp = *rec.MRP
	}

	serial, err := p.packed.Append(rec.MfgDate, rec.ExpiryDate, shelfLife, quantity, mrp, rec.ExpiryStatus())
	if err != nil {
		return fmt.Errorf("append packed row: %w", err)
	}

	p.logger.Info("pipeline.item.packed",
		"item_id", itemID, "product_number", serial,
		"mfg", rec.MfgDate, "expiry", rec.ExpiryDate,
		"shelf_life", shelfLife, "quantity", quantity,
		"status", rec.ExpiryStatus(),
	)
	return nil
}

func (p *Processor) processProduce(ctx context.Context, itemID uuid.UUID, path string) error {
	res, err := p.freshness.ClassifyFreshness(ctx, path)
	if err != nil {
		return fmt.Errorf("freshness: %w", err)
	}

	status := "Rotten"
	if res.Class.IsFresh() {
		status = "Fresh"
	}

	serial, err := p.unpacked.Append(string(res.Class), status)
	if err != nil {
		return fmt.Errorf("append unpacked row: %w", err)
	}

	p.logger.Info("pipeline.item.produce",
		"item_id", itemID, "sl_no", serial,
		"class", res.Class, "status", status,
		"shelf_life_days", res.ShelfLifeDays,
	)
	return nil
}

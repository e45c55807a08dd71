package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shelftrack/shelftrack/internal/common"
	"github.com/shelftrack/shelftrack/internal/ner"
)

// DateLayout is the output format for label dates.
const DateLayout = "02/01/2006"

// Record is the structured result of one extraction. Constructed once per
// input text, immutable afterward. Absent fields are empty strings / nil.
type Record struct {
	MfgDate    string
	ExpiryDate string
	ShelfLife  *ShelfLife
	Quantity   *Quantity
	MRP        *float64
}

// ExpiryStatus renders the record's expiry status, empty when no shelf life
// was computed.
func (r Record) ExpiryStatus() string {
	if r.ShelfLife == nil {
		return ""
	}
	return r.ShelfLife.ExpiryStatus()
}

// Extractor turns raw OCR text into a Record. Safe for concurrent use: the
// corrector lexicon and recognizer are read-only after construction.
type Extractor struct {
	logger     *slog.Logger
	corrector  *Corrector
	recognizer ner.EntityRecognizer

	// Now supplies the wall clock for shelf-life computation; injectable
	// for reproducible tests.
	Now func() time.Time
}

func NewExtractor(logger *slog.Logger, recognizer ner.EntityRecognizer) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if recognizer == nil {
		recognizer = ner.NewProseRecognizer()
	}
	return &Extractor{
		logger:     logger,
		corrector:  NewCorrector(),
		recognizer: recognizer,
		Now:        time.Now,
	}
}

// Extract runs the full pipeline: normalize -> spell-correct -> dates and
// quantity -> role resolution, with the price pass run separately over the
// raw text and merged in. Missing fields are soft misses; only a panic in
// the matching stages surfaces as an error, reported as extraction failure
// for this item without aborting the batch.
func (e *Extractor) Extract(ctx context.Context, raw string) (rec Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = common.NewAppError("EXTRACT_FAILED",
				fmt.Sprintf("extraction panic: %v", r), common.ErrInternal)
		}
	}()
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	now := e.Now()
	text := e.corrector.Correct(Normalize(raw))

	if qty, qerr := ExtractQuantity(text); qerr == nil {
		rec.Quantity = &qty
	} else if !errors.Is(qerr, ErrNoQuantity) {
		return Record{}, qerr
	}

	dates := ExtractDates(text, now)
	res := Resolve(dates, text, now)
	if res.MfgDate != nil {
		rec.MfgDate = res.MfgDate.Format(DateLayout)
	}
	if res.ExpiryDate != nil {
		rec.ExpiryDate = res.ExpiryDate.Format(DateLayout)
	}
	rec.ShelfLife = res.ShelfLife

	rec.MRP = e.extractPrice(raw)

	e.logger.Debug("extract.ok",
		"dates_found", len(dates),
		"mfg", rec.MfgDate, "expiry", rec.ExpiryDate,
		"has_quantity", rec.Quantity != nil,
		"has_mrp", rec.MRP != nil,
	)
	return rec, nil
}

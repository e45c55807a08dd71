package export

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"
)

// PackedHeaders is the header row for packed (label-bearing) products.
var PackedHeaders = []string{
	"Product Number",
	"Manufacturing Date",
	"Expiry Date",
	"Shelf Life",
	"Quantity",
	"MRP",
	"Status",
}

// UnpackedHeaders is the header row for loose produce.
var UnpackedHeaders = []string{"Sl. No", "Name", "Fresh/Rotten"}

// Store is an append-only XLSX workbook: one row per processed item, serial
// number in the first column. A workbook that fails to load is discarded and
// recreated so one corrupt file never blocks a batch. Appends are serialized
// behind a mutex; callers may share a Store across workers.
type Store struct {
	mu      sync.Mutex
	path    string
	sheet   string
	headers []string
	f       *excelize.File
	nextRow int
	logger  *slog.Logger
}

// OpenStore opens or creates the workbook at path with the given sheet name
// and header row.
func OpenStore(path, sheet string, headers []string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{path: path, sheet: sheet, headers: headers, logger: logger}

	if _, err := os.Stat(path); err == nil {
		f, loadErr := excelize.OpenFile(path)
		if loadErr == nil {
			rows, rerr := f.GetRows(sheet)
			if rerr == nil && len(rows) > 0 {
				s.f = f
				s.nextRow = len(rows) + 1
				return s, nil
			}
			loadErr = fmt.Errorf("sheet %s empty or unreadable: %v", sheet, rerr)
			_ = f.Close()
		}
		// corrupted or missing sheet: drop and start over
		logger.Warn("workbook.corrupted", "path", path, "error", loadErr)
		if rmErr := os.Remove(path); rmErr != nil {
			return nil, fmt.Errorf("remove corrupted workbook %s: %w", path, rmErr)
		}
	}

	if err := s.create(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) create() error {
	f := excelize.NewFile()
	index, err := f.NewSheet(s.sheet)
	if err != nil {
		return fmt.Errorf("new sheet %s: %w", s.sheet, err)
	}
	f.SetActiveSheet(index)
	if s.sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("drop default sheet: %w", err)
		}
	}
	for i, h := range s.headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(s.sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	_ = f.SetColWidth(s.sheet, "A", "A", 14)
	_ = f.SetColWidth(s.sheet, "B", "E", 18)
	_ = f.SetColWidth(s.sheet, "F", "G", 14)
	s.f = f
	s.nextRow = 2
	return nil
}

// Append writes one row after the serial number it assigns, and returns that
// serial. Serials continue from rows already present in the workbook.
func (s *Store) Append(values ...any) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	serial := s.nextRow - 1
	row := append([]any{serial}, values...)
	for i, v := range row {
		cell, _ := excelize.CoordinatesToCellName(i+1, s.nextRow)
		if err := s.f.SetCellValue(s.sheet, cell, v); err != nil {
			return 0, fmt.Errorf("write row %d: %w", s.nextRow, err)
		}
	}
	s.nextRow++
	return serial, nil
}

// Rows returns the number of data rows currently in the workbook.
func (s *Store) Rows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextRow - 2
}

// Save flushes the workbook to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", s.path, err)
	}
	s.logger.Info("workbook.saved", "path", s.path, "rows", s.nextRow-2)
	return nil
}

// Close releases the underlying file handles without saving.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}

package pipeline

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/shelftrack/shelftrack/constants"
)

// WalkStats aggregates a directory scan.
type WalkStats struct {
	Scanned uint32
	Matched uint32
}

// ListImages walks root and returns the image paths the batch should
// process, skipping hidden files and directories. Walk errors on individual
// entries are skipped so one unreadable file never aborts the scan.
func ListImages(root string) ([]string, WalkStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, WalkStats{}, errors.New("root path is required")
	}

	var paths []string
	var stats WalkStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // continue walking
		}
		if isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		if !constants.IsImageExt(filepath.Ext(path)) {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	return paths, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}

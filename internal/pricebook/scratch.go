package pricebook

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// scratchFiles tracks thumbnails written for embedding so they can be
// removed once the workbook is saved. Names carry a per-run ID, so two
// runs sharing a directory do not collide.
type scratchFiles struct {
	dir    string
	runID  string
	paths  []string
	logger *zap.Logger
}

func newScratchFiles(dir string, logger *zap.Logger) *scratchFiles {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &scratchFiles{
		dir:    dir,
		runID:  uuid.NewString(),
		logger: logger,
	}
}

// WritePNG encodes img as img_<handle>_<row>_<run>.png and registers it
// for cleanup.
func (s *scratchFiles) WritePNG(img image.Image, handle string, row int) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	name := fmt.Sprintf("img_%s_%d_%s.png", safeName(handle), row, s.runID)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	s.paths = append(s.paths, path)

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// Paths returns the registered files.
func (s *scratchFiles) Paths() []string {
	return append([]string(nil), s.paths...)
}

// Cleanup removes every registered file. Failures are logged.
func (s *scratchFiles) Cleanup() {
	for _, path := range s.paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("could not remove scratch file", zap.String("path", path), zap.Error(err))
		}
	}
	s.paths = nil
}

// safeName keeps handles usable as file name parts.
func safeName(s string) string {
	if s == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, s)
}

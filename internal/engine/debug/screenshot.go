// Package debug provides developer tooling for the running scene.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes captured frames as PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshots returns a writer saving into dir. Files are named
// prefix_YYYY-MM-DD_HH-MM-SS.png.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Dir returns the output directory.
func (s *Screenshots) Dir() string {
	return s.dir
}

// Save encodes img to a new file and returns its path. It never overwrites
// an earlier capture taken within the same second.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if img == nil || img.Bounds().Empty() {
		return "", errors.New("empty image")
	}
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, path, err := s.create()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

// create opens the first free filename for the current time.
func (s *Screenshots) create() (*os.File, string, error) {
	base := fmt.Sprintf("%s_%s", s.prefix, s.now().Format("2006-01-02_15-04-05"))
	for i := 0; i < 100; i++ {
		name := base + ".png"
		if i > 0 {
			name = fmt.Sprintf("%s_%d.png", base, i)
		}
		path := filepath.Join(s.dir, name)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("creating file: %w", err)
		}
	}
	return nil, "", fmt.Errorf("no free screenshot name for %s", base)
}

// Package iconset writes the directory of sized bitmaps that iconutil packs
// into an .icns archive.
package iconset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/Mavwarf/tictracker-icon/internal/icon"
	"github.com/Mavwarf/tictracker-icon/internal/log"
	"github.com/Mavwarf/tictracker-icon/internal/paths"
)

// Sizes are the point sizes macOS expects. Each is written at 1x and 2x.
var Sizes = []int{16, 32, 128, 256, 512}

// Entry is one bitmap of the iconset.
type Entry struct {
	Name   string // file name inside the .iconset directory
	Pixels int    // edge length in pixels
}

// Entries returns the full list of bitmaps, 1x followed by @2x for each size.
func Entries() []Entry {
	entries := make([]Entry, 0, len(Sizes)*2)
	for _, s := range Sizes {
		entries = append(entries,
			Entry{Name: fmt.Sprintf("icon_%dx%d.png", s, s), Pixels: s},
			Entry{Name: fmt.Sprintf("icon_%dx%d@2x.png", s, s), Pixels: s * 2},
		)
	}
	return entries
}

// Write creates dir and fills it with one PNG per entry, scaled from src.
// It returns the written paths in Entries() order.
func Write(dir string, src image.Image) ([]string, error) {
	if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
		return nil, fmt.Errorf("create iconset: %w", err)
	}
	var written []string
	for _, e := range Entries() {
		p := filepath.Join(dir, e.Name)
		if err := paths.WritePNG(p, icon.Resize(src, e.Pixels)); err != nil {
			return written, fmt.Errorf("write %s: %w", e.Name, err)
		}
		log.Debugf("wrote %s (%dpx)", e.Name, e.Pixels)
		written = append(written, p)
	}
	return written, nil
}

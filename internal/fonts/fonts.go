// Package fonts picks the typeface for the icon text. Discovery is best
// effort: a missing or unreadable system font never fails the run.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Candidates are the macOS system fonts tried in order.
var Candidates = []string{
	"/System/Library/Fonts/SFNSRounded.ttf",
	"/System/Library/Fonts/SFNS.ttf",
	"/Library/Fonts/SF-Pro-Rounded-Bold.otf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/HelveticaNeue.ttc",
}

// FallbackName identifies the embedded font in logs.
const FallbackName = "Go Bold (embedded)"

// Find returns the first candidate that exists as a regular file, or "".
func Find(candidates []string) string {
	for _, p := range candidates {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// Load parses the font file at path and returns a face of the given pixel
// size. Collections (.ttc/.otc) use their first font.
func Load(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f *sfnt.Font
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if coll.NumFonts() == 0 {
			return nil, fmt.Errorf("parse %s: empty collection", path)
		}
		if f, err = coll.Font(0); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if f, err = opentype.Parse(data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return newFace(f, size)
}

func newFace(f *sfnt.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Fallback returns the embedded Go Bold face. If that cannot be parsed the
// fixed 7x13 bitmap face is returned instead.
func Fallback(size float64) font.Face {
	f, err := opentype.Parse(gobold.TTF)
	if err == nil {
		if face, err := newFace(f, size); err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

// Face resolves a face from candidates, falling back to the embedded font
// when none exist or the first existing one fails to load. The second
// return value names the font used, and a non-nil error reports why the
// fallback was taken after a load failure; it is informational only.
func Face(candidates []string, size float64) (font.Face, string, error) {
	path := Find(candidates)
	if path == "" {
		return Fallback(size), FallbackName, nil
	}
	face, err := Load(path, size)
	if err != nil {
		return Fallback(size), FallbackName, err
	}
	return face, path, nil
}

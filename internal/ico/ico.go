// Package ico writes a Windows .ico companion of the app icon.
package ico

import (
	"bytes"
	"fmt"
	"image"

	goico "github.com/sergeymakinen/go-ico"

	"github.com/Mavwarf/tictracker-icon/internal/icon"
	"github.com/Mavwarf/tictracker-icon/internal/paths"
)

// Size is the edge length stored in the .ico. 256 is the largest size the
// format supports and Windows scales it down for smaller contexts.
const Size = 256

// Encode returns src scaled to Size and wrapped in an ICO container.
func Encode(src image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := goico.Encode(&buf, icon.Resize(src, Size)); err != nil {
		return nil, fmt.Errorf("encode ico: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes src and writes it to path.
func Write(path string, src image.Image) error {
	data, err := Encode(src)
	if err != nil {
		return err
	}
	return paths.AtomicWrite(path, data)
}

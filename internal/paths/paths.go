package paths

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

const (
	PreviewFileName = "AppIcon_1024.png"
	IconsetDirName  = "AppIcon.iconset"
	ArchiveFileName = "AppIcon.icns"
	ICOFileName     = "AppIcon.ico"
	DirPerm         = 0755
	FilePerm        = 0644
)

// Outputs holds the resolved locations of everything mkicon writes.
type Outputs struct {
	Preview string
	Iconset string
	Archive string
	ICO     string
}

// In returns the output locations inside dir. An empty dir means the
// working directory.
func In(dir string) Outputs {
	return Outputs{
		Preview: filepath.Join(dir, PreviewFileName),
		Iconset: filepath.Join(dir, IconsetDirName),
		Archive: filepath.Join(dir, ArchiveFileName),
		ICO:     filepath.Join(dir, ICOFileName),
	}
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// WritePNG encodes img as PNG and writes it to path atomically.
func WritePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return AtomicWrite(path, buf.Bytes())
}

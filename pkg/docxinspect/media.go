package docxinspect

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MediaItem is one embedded media file copied out of the document.
type MediaItem struct {
	Name string // base name inside word/media
	Path string
	Size int64
	// Pixel size, zero when the format cannot be decoded (e.g. EMF or WMF)
	Width, Height int
}

// ExtractMedia copies every word/media item into dir, creating dir if needed.
func ExtractMedia(r *Reader, dir string) ([]MediaItem, error) {
	// 0755 mean owner can read, write and execute
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}

	var items []MediaItem
	for _, name := range r.Media() {
		item, err := extractOne(r, name, dir)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func extractOne(r *Reader, name, dir string) (MediaItem, error) {
	item := MediaItem{Name: path.Base(name)}
	item.Path = filepath.Join(dir, item.Name)

	src, err := r.OpenMedia(name)
	if err != nil {
		return item, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer src.Close()

	dst, err := os.Create(item.Path)
	if err != nil {
		return item, fmt.Errorf("failed to create %s: %w", item.Path, err)
	}
	defer dst.Close()

	item.Size, err = io.Copy(dst, src)
	if err != nil {
		return item, fmt.Errorf("failed to copy %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		return item, err
	}

	item.Width, item.Height = pixelSize(item.Path)
	return item, nil
}

func pixelSize(file string) (int, int) {
	f, err := os.Open(file)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

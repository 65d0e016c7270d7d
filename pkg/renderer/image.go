package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for image extensions without an encoder
var ErrUnsupportedFormat = errors.New("renderer: unsupported image format")

// SupportedFormat reports whether ext names a format EncodeImage can write
func SupportedFormat(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// EncodeImage writes img to w in the format named by ext (".png", ".bmp",
// ".tif" or ".tiff")
func EncodeImage(w io.Writer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// SaveImage writes img to path, choosing the encoder from the file extension
func SaveImage(path string, img image.Image) error {
	ext := filepath.Ext(path)
	if !SupportedFormat(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("renderer: creating %s: %w", path, err)
	}
	if err := EncodeImage(f, ext, img); err != nil {
		f.Close()
		return fmt.Errorf("renderer: encoding %s: %w", path, err)
	}
	return f.Close()
}

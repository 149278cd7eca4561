package canvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Format identifies an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ErrUnknownFormat is returned for output formats the canvas cannot encode
var ErrUnknownFormat = errors.New("canvas: unknown output format")

// ParseFormat converts a format name or file extension to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return "." + string(f)
}

// ContentType returns the MIME type used when serving the format over HTTP
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	}
	return "image/x-portable-pixmap"
}

// Scaled returns the canvas as an image enlarged by an integer factor.
// Nearest-neighbor filtering keeps each rendered pixel a crisp block.
func (c *Canvas) Scaled(scale int) image.Image {
	img := c.Image()
	if scale <= 1 {
		return img
	}
	return imaging.Resize(img, c.width*scale, c.height*scale, imaging.NearestNeighbor)
}

// Encode writes the canvas in the given format. PPM output is never scaled.
func (c *Canvas) Encode(w io.Writer, format Format, scale int) error {
	switch format {
	case FormatPPM:
		return c.WritePPM(w)
	case FormatPNG:
		return imaging.Encode(w, c.Scaled(scale), imaging.PNG)
	case FormatJPEG:
		return imaging.Encode(w, c.Scaled(scale), imaging.JPEG, imaging.JPEGQuality(95))
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save writes the canvas to path, choosing the format from the file extension
// and creating parent directories as needed
func (c *Canvas) Save(path string, scale int) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if format != FormatPPM {
		return imaging.Save(c.Scaled(scale), path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := c.WritePPM(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

package canvas

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCanvas_New(t *testing.T) {
	c := New(10, 20)
	if c.Width() != 10 || c.Height() != 20 {
		t.Fatalf("Expected 10x20, got %dx%d", c.Width(), c.Height())
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if !c.PixelAt(x, y).Equal(core.Black) {
				t.Fatalf("Expected black at (%d,%d), got %v", x, y, c.PixelAt(x, y))
			}
		}
	}
}

func TestCanvas_WritePixel(t *testing.T) {
	c := New(10, 20)
	red := core.NewColor(1, 0, 0)
	c.WritePixel(2, 3, red)

	if !c.PixelAt(2, 3).Equal(red) {
		t.Errorf("Expected %v, got %v", red, c.PixelAt(2, 3))
	}
	if !c.PixelAt(3, 2).Equal(core.Black) {
		t.Errorf("Expected neighbouring pixel to stay black, got %v", c.PixelAt(3, 2))
	}
}

func TestCanvas_WritePixelOutOfBounds(t *testing.T) {
	c := New(4, 4)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		c.WritePixel(p[0], p[1], core.White)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !c.PixelAt(x, y).Equal(core.Black) {
				t.Errorf("Out-of-bounds write leaked into (%d,%d)", x, y)
			}
		}
	}
	if !c.PixelAt(-1, 0).Equal(core.Black) {
		t.Errorf("Expected black outside the canvas")
	}
}

func TestCanvas_PPMHeader(t *testing.T) {
	ppm := New(5, 3).PPM()
	lines := strings.Split(ppm, "\n")
	expected := []string{"P3", "5 3", "255"}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Line %d: expected %q, got %q", i+1, want, lines[i])
		}
	}
}

func TestCanvas_PPMPixelData(t *testing.T) {
	c := New(5, 3)
	c.WritePixel(0, 0, core.NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, core.NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, core.NewColor(-0.5, 0, 1))

	lines := strings.Split(c.PPM(), "\n")
	expected := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	for i, want := range expected {
		if lines[3+i] != want {
			t.Errorf("Line %d: expected %q, got %q", 4+i, want, lines[3+i])
		}
	}
}

func TestCanvas_PPMLongLinesWrap(t *testing.T) {
	c := New(10, 2)
	c.Fill(core.NewColor(1, 0.8, 0.6))

	lines := strings.Split(c.PPM(), "\n")
	expected := []string{
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
	}
	for i, want := range expected {
		if lines[3+i] != want {
			t.Errorf("Line %d: expected %q, got %q", 4+i, want, lines[3+i])
		}
	}
	for i, line := range lines {
		if len(line) > maxPPMLineLength {
			t.Errorf("Line %d exceeds %d characters: %d", i+1, maxPPMLineLength, len(line))
		}
	}
}

func TestCanvas_PPMEndsWithNewline(t *testing.T) {
	ppm := New(5, 3).PPM()
	if !strings.HasSuffix(ppm, "\n") {
		t.Errorf("Expected PPM to end with a newline")
	}
}

func TestCanvas_Image(t *testing.T) {
	c := New(2, 1)
	c.WritePixel(0, 0, core.NewColor(2, 0.5, -1))

	img := c.Image()
	got := img.NRGBAAt(0, 0)
	if got.R != 255 || got.G != 128 || got.B != 0 || got.A != 255 {
		t.Errorf("Expected {255 128 0 255}, got %v", got)
	}
}

func TestCanvas_EncodePNGScaled(t *testing.T) {
	c := New(3, 2)
	c.WritePixel(1, 1, core.White)

	var buf bytes.Buffer
	if err := c.Encode(&buf, FormatPNG, 4); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Fatalf("Expected 12x8, got %v", img.Bounds())
	}

	// every pixel of the upscaled block keeps the source color
	r, g, b, _ := img.At(5, 6).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("Expected white at (5,6), got %d %d %d", r>>8, g>>8, b>>8)
	}
	r, _, _, _ = img.At(3, 3).RGBA()
	if r != 0 {
		t.Errorf("Expected black at (3,3), got red=%d", r>>8)
	}
}

func TestCanvas_EncodeUnknownFormat(t *testing.T) {
	err := New(1, 1).Encode(&bytes.Buffer{}, Format("gif"), 1)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"ppm", FormatPPM, false},
		{".png", FormatPNG, false},
		{"JPG", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"bmp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCanvas_Save(t *testing.T) {
	dir := t.TempDir()
	c := New(4, 4)
	c.Fill(core.NewColor(0.2, 0.4, 0.6))

	ppmPath := filepath.Join(dir, "nested", "out.ppm")
	if err := c.Save(ppmPath, 1); err != nil {
		t.Fatalf("Unexpected error saving PPM: %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatalf("Failed to read PPM: %v", err)
	}
	if string(data) != c.PPM() {
		t.Errorf("Saved PPM does not match PPM()")
	}

	pngPath := filepath.Join(dir, "out.png")
	if err := c.Save(pngPath, 2); err != nil {
		t.Fatalf("Unexpected error saving PNG: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("Failed to open PNG: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("Expected width 8, got %d", img.Bounds().Dx())
	}
}

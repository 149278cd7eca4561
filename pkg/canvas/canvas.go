package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a rectangular grid of unclamped colors, initially black.
// Writes to distinct pixels may happen concurrently.
type Canvas struct {
	width, height int
	pixels        []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// WritePixel stores a color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if !c.contains(x, y) {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at (x, y), or black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.contains(x, y) {
		return core.Black
	}
	return c.pixels[y*c.width+x]
}

// Fill sets every pixel to the same color
func (c *Canvas) Fill(col core.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// Image converts the canvas to an 8-bit image, clamping each channel
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetNRGBA(x, y, color.NRGBA{
				R: clampChannel(p.R),
				G: clampChannel(p.G),
				B: clampChannel(p.B),
				A: 255,
			})
		}
	}
	return img
}

func (c *Canvas) contains(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// clampChannel maps [0, 1] to [0, 255], saturating outside that range
func clampChannel(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}

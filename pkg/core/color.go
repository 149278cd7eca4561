package core

import "fmt"

// Color is an RGB triple. Channels are unclamped until serialization.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color
var Black = Color{}

// White is full intensity on every channel
var White = Color{R: 1, G: 1, B: 1}

// ColorFromTuple reads the three leading components of a tuple as channels
func ColorFromTuple(t Tuple) Color {
	return Color{R: t.X, G: t.Y, B: t.Z}
}

// Tuple returns the color in its homogeneous encoding (W = 0)
func (c Color) Tuple() Tuple {
	return Tuple{X: c.R, Y: c.G, Z: c.B, W: 0}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equal reports whether every channel is within Epsilon
func (c Color) Equal(other Color) bool {
	return ApproxEqual(c.R, other.R) && ApproxEqual(c.G, other.G) && ApproxEqual(c.B, other.B)
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c.R, c.G, c.B)
}

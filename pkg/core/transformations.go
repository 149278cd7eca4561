package core

import (
	"fmt"
	"math"
)

// Axis selects the rotation axis
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Translation returns a transform that moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m.cells[0][3] = x
	m.cells[1][3] = y
	m.cells[2][3] = z
	return m
}

// Scaling returns a transform that scales each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m.cells[0][0] = x
	m.cells[1][1] = y
	m.cells[2][2] = z
	return m
}

// RotationX returns a right-handed rotation about the X axis
func RotationX(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return MustMatrix(
		[]float64{1, 0, 0, 0},
		[]float64{0, cos, -sin, 0},
		[]float64{0, sin, cos, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationY returns a right-handed rotation about the Y axis
func RotationY(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return MustMatrix(
		[]float64{cos, 0, sin, 0},
		[]float64{0, 1, 0, 0},
		[]float64{-sin, 0, cos, 0},
		[]float64{0, 0, 0, 1},
	)
}

// RotationZ returns a right-handed rotation about the Z axis
func RotationZ(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return MustMatrix(
		[]float64{cos, -sin, 0, 0},
		[]float64{sin, cos, 0, 0},
		[]float64{0, 0, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// Rotation returns a rotation about the given axis
func Rotation(axis Axis, radians float64) Matrix {
	switch axis {
	case AxisX:
		return RotationX(radians)
	case AxisY:
		return RotationY(radians)
	case AxisZ:
		return RotationZ(radians)
	}
	panic(fmt.Sprintf("core: unknown rotation axis %v", axis))
}

// Shearing returns a transform that moves each component in proportion to the other two.
// xy is "x moved in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zy, zx float64) Matrix {
	return MustMatrix(
		[]float64{1, xy, xz, 0},
		[]float64{yx, 1, yz, 0},
		[]float64{zx, zy, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// Chain composes transforms in application order: the first argument is
// applied first, so Chain(a, b, c) equals c × b × a.
func Chain(transforms ...Matrix) Matrix {
	out := Identity()
	for _, t := range transforms {
		out = t.Multiply(out)
	}
	return out
}

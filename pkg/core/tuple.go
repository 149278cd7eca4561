package core

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by every approximate equality in the raytracer
const Epsilon = 1e-5

// ApproxEqual reports whether a and b differ by less than Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a homogeneous coordinate: W is 1 for points and 0 for vectors
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from raw components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple with W = 1
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with W = 0
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return ApproxEqual(t.W, 1)
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return ApproxEqual(t.W, 0)
}

// Add returns the component-wise sum. Adding two points panics.
func (t Tuple) Add(other Tuple) Tuple {
	if t.IsPoint() && other.IsPoint() {
		panic("core: cannot add two points")
	}
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference.
// point-point is a vector, point-vector a point, vector-vector a vector;
// vector-point panics.
func (t Tuple) Subtract(other Tuple) Tuple {
	if t.IsVector() && other.IsPoint() {
		panic("core: cannot subtract a point from a vector")
	}
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the Euclidean norm over all four components
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit vector in the same direction.
// A zero vector yields NaN components.
func (t Tuple) Normalize() Tuple {
	mustBeVector("normalize", t)
	return t.Divide(t.Magnitude())
}

// Dot returns the dot product of two vectors
func (t Tuple) Dot(other Tuple) float64 {
	mustBeVector("dot", t, other)
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z
}

// Cross returns the cross product of two vectors
func (t Tuple) Cross(other Tuple) Tuple {
	mustBeVector("cross", t, other)
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect mirrors the vector about a surface normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equal reports whether every component is within Epsilon
func (t Tuple) Equal(other Tuple) bool {
	return ApproxEqual(t.X, other.X) &&
		ApproxEqual(t.Y, other.Y) &&
		ApproxEqual(t.Z, other.Z) &&
		ApproxEqual(t.W, other.W)
}

func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
	}
}

func mustBeVector(op string, tuples ...Tuple) {
	for _, t := range tuples {
		if !t.IsVector() {
			panic(fmt.Sprintf("core: %s requires vectors, got %v", op, t))
		}
	}
}

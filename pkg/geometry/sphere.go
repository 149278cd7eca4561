package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere is a unit sphere at the object-space origin, placed in the world by a transform.
// Use NewSphere; the zero value has no transform.
type Sphere struct {
	origin           core.Tuple
	radius           float64
	transform        core.Matrix // object to world
	inverse          core.Matrix // world to object
	inverseTranspose core.Matrix // object normals to world normals
	Material         material.Material
}

// NewSphere creates a unit sphere with the identity transform and the default material
func NewSphere() Sphere {
	return Sphere{
		origin:           core.Point(0, 0, 0),
		radius:           1,
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		Material:         material.DefaultMaterial(),
	}
}

// Transform returns the object-to-world transform
func (s Sphere) Transform() core.Matrix {
	return s.transform
}

// SetTransform replaces the object-to-world transform.
// A non-invertible transform is rejected and the sphere is left unchanged.
func (s *Sphere) SetTransform(transform core.Matrix) error {
	inverse, err := transform.Inverse()
	if err != nil {
		return fmt.Errorf("invalid sphere transform %v: %w", transform, err)
	}
	s.transform = transform
	s.inverse = inverse
	s.inverseTranspose = inverse.Transpose()
	return nil
}

// Equal compares object-space shape only; transform and material are ignored
func (s Sphere) Equal(other Sphere) bool {
	return s.origin.Equal(other.origin) && core.ApproxEqual(s.radius, other.radius)
}

// Intersect returns the points where the ray crosses the sphere's surface, ordered by t
func (s Sphere) Intersect(ray core.Ray) Intersections {
	// Move the ray into object space
	ray = ray.Transform(s.inverse)

	sphereToRay := ray.Origin.Subtract(s.origin)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersections{}
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// Tangent ray: report a single intersection
	if math.Abs(t1-t2) < core.Epsilon {
		return NewIntersections(s, t1)
	}
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return NewIntersections(s, t1, t2)
}

// NormalAt returns the world-space surface normal at a world-space point
func (s Sphere) NormalAt(worldPoint core.Tuple) core.Tuple {
	objectPoint := s.inverse.MultiplyTuple(worldPoint)
	objectNormal := objectPoint.Subtract(s.origin)

	// The transpose of the inverse keeps normals perpendicular under non-uniform scaling.
	// Its translation row leaks into W, which must be discarded.
	worldNormal := s.inverseTranspose.MultiplyTuple(objectNormal)
	worldNormal.W = 0

	return worldNormal.Normalize()
}

package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Intersection records where along a ray an object was hit
type Intersection struct {
	T      float64 // Ray parameter of the hit
	Object Sphere  // Copy of the object that was hit
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Sphere) Intersection {
	return Intersection{T: t, Object: object}
}

// Equal reports whether both intersections hit the same object at the same t
func (i Intersection) Equal(other Intersection) bool {
	return i.Object.Equal(other.Object) && core.ApproxEqual(i.T, other.T)
}

func (i Intersection) String() string {
	return fmt.Sprintf("intersection(t=%g)", i.T)
}

// Intersections is a set of intersections in discovery order
type Intersections []Intersection

// NewIntersections creates one intersection with object for each t
func NewIntersections(object Sphere, ts ...float64) Intersections {
	xs := make(Intersections, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, NewIntersection(t, object))
	}
	return xs
}

// Count returns the number of intersections
func (xs Intersections) Count() int {
	return len(xs)
}

// Hit returns the visible intersection: the one with the smallest non-negative t.
// Intersections behind the ray origin are never selected.
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}

// Sorted returns a copy ordered by ascending t
func (xs Intersections) Sorted() Intersections {
	out := make(Intersections, len(xs))
	copy(out, xs)
	sort.SliceStable(out, func(a, b int) bool { return out[a].T < out[b].T })
	return out
}

package core

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
// Negative t lies behind the origin.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns a new ray with origin and direction multiplied by m.
// The direction has W = 0, so the translation column does not affect it.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}

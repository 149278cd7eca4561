package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

var (
	// ErrUnknownScene is returned when a scene name is not registered
	ErrUnknownScene = errors.New("scene: unknown scene")
	// ErrUnknownTransform is returned for transform ops a scene file cannot express
	ErrUnknownTransform = errors.New("scene: unknown transform")
	// ErrInvalidScene is returned when a scene cannot be rendered as described
	ErrInvalidScene = errors.New("scene: invalid scene")
)

// Scene contains all the elements needed for rendering: a flat list of
// spheres, a single point light, and a wall-projection camera. Rays leave
// Eye and pass through a square wall of side WallSize centered on the z axis
// at z = WallZ.
type Scene struct {
	Name        string
	Description string
	Spheres     []geometry.Sphere
	Light       lights.PointLight
	Eye         core.Tuple
	WallZ       float64
	WallSize    float64
	Background  core.Color // Color of pixels whose ray misses every sphere
}

// New creates an empty scene with the classic camera setup and a white light
// above and to the left of the eye
func New(name string) *Scene {
	return &Scene{
		Name:       name,
		Spheres:    make([]geometry.Sphere, 0),
		Light:      lights.NewPointLight(core.Point(-10, 10, -10), core.White),
		Eye:        core.Point(0, 0, -5),
		WallZ:      10,
		WallSize:   7,
		Background: core.Black,
	}
}

// AddSphere adds a sphere with the given transform and material.
// Singular transforms are rejected.
func (s *Scene) AddSphere(transform core.Matrix, m material.Material) error {
	sphere := geometry.NewSphere()
	if err := sphere.SetTransform(transform); err != nil {
		return fmt.Errorf("sphere %d: %w", len(s.Spheres), err)
	}
	sphere.Material = m
	s.Spheres = append(s.Spheres, sphere)
	return nil
}

// Validate checks that the scene can be rendered
func (s *Scene) Validate() error {
	if !s.Eye.IsPoint() {
		return fmt.Errorf("%w: eye must be a point, got %v", ErrInvalidScene, s.Eye)
	}
	if !s.Light.Position.IsPoint() {
		return fmt.Errorf("%w: light position must be a point, got %v", ErrInvalidScene, s.Light.Position)
	}
	if s.WallSize <= 0 {
		return fmt.Errorf("%w: wall size must be positive, got %g", ErrInvalidScene, s.WallSize)
	}
	if s.WallZ <= s.Eye.Z {
		return fmt.Errorf("%w: wall (z=%g) must be in front of the eye (z=%g)", ErrInvalidScene, s.WallZ, s.Eye.Z)
	}
	for i, sphere := range s.Spheres {
		if err := sphere.Material.Validate(); err != nil {
			return fmt.Errorf("%w: sphere %d: %v", ErrInvalidScene, i, err)
		}
	}
	return nil
}

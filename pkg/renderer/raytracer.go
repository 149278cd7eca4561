package renderer

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Raytracer shades single rays against a scene. It holds no mutable state
// and is safe for concurrent use.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	width  int
	height int
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: NewCamera(s, width, height),
		width:  width,
		height: height,
	}
}

// Camera returns the camera used to generate primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// IntersectWorld returns the intersections of ray with every sphere in the
// scene, ordered by ascending t
func (rt *Raytracer) IntersectWorld(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, sphere := range rt.scene.Spheres {
		xs = append(xs, sphere.Intersect(ray)...)
	}
	return xs.Sorted()
}

// ColorAt shades the nearest visible hit along ray with the scene's light.
// It returns the background color and false when nothing is hit.
func (rt *Raytracer) ColorAt(ray core.Ray) (core.Color, bool) {
	hit, ok := rt.IntersectWorld(ray).Hit()
	if !ok {
		return rt.scene.Background, false
	}

	point := ray.Position(hit.T)
	normal := hit.Object.NormalAt(point)
	eye := ray.Direction.Negate()
	return hit.Object.Material.Lighting(rt.scene.Light, point, eye, normal), true
}

// PixelColor shades the primary ray through pixel (x, y)
func (rt *Raytracer) PixelColor(x, y int) (core.Color, bool) {
	return rt.ColorAt(rt.camera.GetRay(x, y))
}

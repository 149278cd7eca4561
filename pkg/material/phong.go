package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Material holds the Phong reflectance parameters of a surface
type Material struct {
	Color     core.Color // Surface color
	Ambient   float64    // Background light reflected, typically 0..1
	Diffuse   float64    // Light reflected from a matte surface, typically 0..1
	Specular  float64    // Strength of the specular highlight, typically 0..1
	Shininess float64    // Size of the specular highlight; larger is smaller and tighter
}

// DefaultMaterial returns a white material with the classic Phong coefficients
func DefaultMaterial() Material {
	return Material{
		Color:     core.NewColor(1, 1, 1),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Validate checks that the coefficients are usable
func (m Material) Validate() error {
	coefficients := []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
	}
	for _, c := range coefficients {
		if c.value < 0 || math.IsNaN(c.value) {
			return fmt.Errorf("material %s must be non-negative, got %g", c.name, c.value)
		}
	}
	if !(m.Shininess > 0) {
		return fmt.Errorf("material shininess must be positive, got %g", m.Shininess)
	}
	return nil
}

// Lighting shades a surface point with the Phong model: ambient + diffuse + specular.
// The result is not clamped.
func (m Material) Lighting(light lights.PointLight, position, eyev, normalv core.Tuple) core.Color {
	// Combine surface color with the light's color
	effectiveColor := m.Color.Hadamard(light.Intensity)

	ambient := effectiveColor.Multiply(m.Ambient)

	lightv := light.Position.Subtract(position).Normalize()

	// Negative means the light is on the other side of the surface
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	// Non-positive means the light reflects away from the eye
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}

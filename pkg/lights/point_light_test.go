package lights

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestNewPointLight(t *testing.T) {
	position := core.Point(0, 0, 0)
	intensity := core.NewColor(1, 1, 1)

	light := NewPointLight(position, intensity)

	if !light.Position.Equal(position) {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if !light.Intensity.Equal(intensity) {
		t.Errorf("Expected intensity %v, got %v", intensity, light.Intensity)
	}
}

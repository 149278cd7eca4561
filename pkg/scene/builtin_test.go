package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestBuiltinNames(t *testing.T) {
	expected := []string{"default", "pair", "squashed"}
	names := BuiltinNames()
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	}
}

func TestBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			s, err := Builtin(name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Name != name {
				t.Errorf("Expected name %q, got %q", name, s.Name)
			}
			if s.Description == "" {
				t.Error("Expected a description")
			}
			if len(s.Spheres) == 0 {
				t.Error("Expected at least one sphere")
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Expected valid scene, got %v", err)
			}
		})
	}
}

func TestBuiltin_Unknown(t *testing.T) {
	_, err := Builtin("cornell-box")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	if len(s.Spheres) != 1 {
		t.Fatalf("Expected 1 sphere, got %d", len(s.Spheres))
	}

	sphere := s.Spheres[0]
	if !sphere.Transform().Equal(core.Identity()) {
		t.Errorf("Expected identity transform, got %v", sphere.Transform())
	}
	if !sphere.Material.Color.Equal(core.NewColor(1, 0.2, 1)) {
		t.Errorf("Expected purple sphere, got %v", sphere.Material.Color)
	}
}

func TestNewPairScene_NearSphereInFront(t *testing.T) {
	s := NewPairScene()
	if len(s.Spheres) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(s.Spheres))
	}

	// a ray through the overlap hits both, and the second sphere first
	ray := core.NewRay(s.Eye, core.Point(0.1, -0.05, 0).Subtract(s.Eye).Normalize())
	farHit, okFar := s.Spheres[0].Intersect(ray).Hit()
	nearHit, okNear := s.Spheres[1].Intersect(ray).Hit()
	if !okFar || !okNear {
		t.Fatalf("Expected ray to hit both spheres (far=%v, near=%v)", okFar, okNear)
	}
	if nearHit.T >= farHit.T {
		t.Errorf("Expected near sphere hit (t=%f) before far sphere hit (t=%f)", nearHit.T, farHit.T)
	}
}

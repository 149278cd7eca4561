package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// builtinScene describes a scene compiled into the binary
type builtinScene struct {
	description string
	build       func() *Scene
}

var builtins = map[string]builtinScene{
	"default": {
		description: "Unit sphere lit from the upper left",
		build:       NewDefaultScene,
	},
	"squashed": {
		description: "Sphere scaled, rotated and sheared into an ellipsoid",
		build:       NewSquashedScene,
	},
	"pair": {
		description: "Two overlapping spheres at different depths",
		build:       NewPairScene,
	},
}

// BuiltinNames returns the names of every built-in scene, sorted
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin creates the built-in scene with the given name
func Builtin(name string) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, BuiltinNames())
	}
	s := b.build()
	s.Description = b.description
	return s, nil
}

// purple is the material of the classic first-render sphere
func purple() material.Material {
	m := material.DefaultMaterial()
	m.Color = core.NewColor(1, 0.2, 1)
	return m
}

// mustAddSphere adds a sphere whose transform is known to be invertible
func (s *Scene) mustAddSphere(transform core.Matrix, m material.Material) {
	if err := s.AddSphere(transform, m); err != nil {
		panic(fmt.Sprintf("scene %s: %v", s.Name, err))
	}
}

// NewDefaultScene creates the classic scene: a purple unit sphere at the
// origin lit by a white light at (-10, 10, -10)
func NewDefaultScene() *Scene {
	s := New("default")
	s.mustAddSphere(core.Identity(), purple())
	return s
}

// NewSquashedScene creates a scene with a single sphere flattened along y,
// rotated about z and sheared in x
func NewSquashedScene() *Scene {
	s := New("squashed")
	s.mustAddSphere(core.Chain(
		core.Scaling(1, 0.5, 1),
		core.RotationZ(math.Pi/4),
		core.Shearing(1, 0, 0, 0, 0, 0),
	), purple())
	return s
}

// NewPairScene creates a scene with two spheres whose silhouettes overlap,
// the nearer one partially hiding the farther one
func NewPairScene() *Scene {
	s := New("pair")

	far := material.DefaultMaterial()
	far.Color = core.NewColor(0.2, 0.6, 1)
	s.mustAddSphere(core.Chain(
		core.Scaling(0.7, 0.7, 0.7),
		core.Translation(-0.4, 0.1, 1),
	), far)

	near := material.DefaultMaterial()
	near.Color = core.NewColor(1, 0.5, 0.1)
	near.Specular = 0.4
	near.Shininess = 50
	s.mustAddSphere(core.Chain(
		core.Scaling(0.4, 0.4, 0.4),
		core.Translation(0.4, -0.2, -1),
	), near)

	return s
}

package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// FileConfig is the JSON form of a scene. Omitted fields keep the values
// of New: the classic camera, a white light at (-10, 10, -10) and the
// default material.
type FileConfig struct {
	Description string         `json:"description,omitempty"`
	Eye         *[3]float64    `json:"eye,omitempty"`
	WallZ       *float64       `json:"wallZ,omitempty"`
	WallSize    *float64       `json:"wallSize,omitempty"`
	Background  *[3]float64    `json:"background,omitempty"`
	Light       *LightConfig   `json:"light,omitempty"`
	Spheres     []SphereConfig `json:"spheres"`
}

// LightConfig is the JSON form of a point light
type LightConfig struct {
	Position  [3]float64 `json:"position"`
	Intensity [3]float64 `json:"intensity"`
}

// MaterialConfig is the JSON form of a Phong material; nil fields use the defaults
type MaterialConfig struct {
	Color     *[3]float64 `json:"color,omitempty"`
	Ambient   *float64    `json:"ambient,omitempty"`
	Diffuse   *float64    `json:"diffuse,omitempty"`
	Specular  *float64    `json:"specular,omitempty"`
	Shininess *float64    `json:"shininess,omitempty"`
}

// TransformConfig is one step of a sphere's transform.
// Rotation angles are given in degrees.
type TransformConfig struct {
	Op   string    `json:"op"`
	Args []float64 `json:"args"`
}

// SphereConfig is the JSON form of a sphere. Transforms are applied in the
// order listed.
type SphereConfig struct {
	Material   *MaterialConfig   `json:"material,omitempty"`
	Transforms []TransformConfig `json:"transforms,omitempty"`
}

// transformArity is the number of arguments each transform op takes
var transformArity = map[string]int{
	"translate": 3,
	"scale":     3,
	"rotateX":   1,
	"rotateY":   1,
	"rotateZ":   1,
	"shear":     6,
}

// ParseTransform builds the matrix for a single named transform op
func ParseTransform(op string, args []float64) (core.Matrix, error) {
	arity, ok := transformArity[op]
	if !ok {
		return core.Matrix{}, fmt.Errorf("%w: %q", ErrUnknownTransform, op)
	}
	if len(args) != arity {
		return core.Matrix{}, fmt.Errorf("transform %s takes %d arguments, got %d", op, arity, len(args))
	}

	switch op {
	case "translate":
		return core.Translation(args[0], args[1], args[2]), nil
	case "scale":
		return core.Scaling(args[0], args[1], args[2]), nil
	case "rotateX":
		return core.RotationX(degreesToRadians(args[0])), nil
	case "rotateY":
		return core.RotationY(degreesToRadians(args[0])), nil
	case "rotateZ":
		return core.RotationZ(degreesToRadians(args[0])), nil
	default: // shear
		return core.Shearing(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	}
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Parse decodes a JSON scene description. Unknown fields are rejected.
func Parse(r io.Reader, name string) (*Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var cfg FileConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scene %s: %w", name, err)
	}
	return cfg.Build(name)
}

// Load reads a JSON scene file. The scene is named after the file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(bytes.NewReader(data), name)
}

// Build converts the decoded configuration into a validated scene
func (cfg FileConfig) Build(name string) (*Scene, error) {
	s := New(name)
	s.Description = cfg.Description
	if cfg.Eye != nil {
		s.Eye = core.Point(cfg.Eye[0], cfg.Eye[1], cfg.Eye[2])
	}
	if cfg.WallZ != nil {
		s.WallZ = *cfg.WallZ
	}
	if cfg.WallSize != nil {
		s.WallSize = *cfg.WallSize
	}
	if cfg.Background != nil {
		s.Background = toColor(*cfg.Background)
	}
	if cfg.Light != nil {
		p := cfg.Light.Position
		s.Light = lights.NewPointLight(core.Point(p[0], p[1], p[2]), toColor(cfg.Light.Intensity))
	}

	for i, sc := range cfg.Spheres {
		steps := make([]core.Matrix, 0, len(sc.Transforms))
		for j, tc := range sc.Transforms {
			m, err := ParseTransform(tc.Op, tc.Args)
			if err != nil {
				return nil, fmt.Errorf("sphere %d, transform %d: %w", i, j, err)
			}
			steps = append(steps, m)
		}
		if err := s.AddSphere(core.Chain(steps...), sc.Material.build()); err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (mc *MaterialConfig) build() material.Material {
	m := material.DefaultMaterial()
	if mc == nil {
		return m
	}
	if mc.Color != nil {
		m.Color = toColor(*mc.Color)
	}
	if mc.Ambient != nil {
		m.Ambient = *mc.Ambient
	}
	if mc.Diffuse != nil {
		m.Diffuse = *mc.Diffuse
	}
	if mc.Specular != nil {
		m.Specular = *mc.Specular
	}
	if mc.Shininess != nil {
		m.Shininess = *mc.Shininess
	}
	return m
}

func toColor(c [3]float64) core.Color {
	return core.NewColor(c[0], c[1], c[2])
}

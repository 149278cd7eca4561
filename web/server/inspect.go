package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit         bool                   `json:"hit"`
	SphereIndex int                    `json:"sphereIndex"` // -1 on a miss
	Distance    float64                `json:"distance"`    // Ray parameter t of the hit
	Point       [3]float64             `json:"point"`
	Normal      [3]float64             `json:"normal"`
	Eye         [3]float64             `json:"eye"`
	Color       [3]float64             `json:"color"` // Unclamped shaded color
	Material    map[string]interface{} `json:"material,omitempty"`
}

// extractMaterialInfo describes a Phong material for the client
func extractMaterialInfo(m material.Material) map[string]interface{} {
	return map[string]interface{}{
		"color":     [3]float64{m.Color.R, m.Color.G, m.Color.B},
		"hex":       fmt.Sprintf("#%02x%02x%02x", toByte(m.Color.R), toByte(m.Color.G), toByte(m.Color.B)),
		"ambient":   m.Ambient,
		"diffuse":   m.Diffuse,
		"specular":  m.Specular,
		"shininess": m.Shininess,
	}
}

func toByte(v float64) int {
	return int(max(0, min(1, v)) * 255)
}

// inspectPixel casts the primary ray through a pixel and reports which
// sphere it hits first and how that point is shaded
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int) InspectResponse {
	rt := renderer.NewRaytracer(sceneObj, width, height)
	ray := rt.Camera().GetRay(pixelX, pixelY)

	response := InspectResponse{SphereIndex: -1}
	bestT := 0.0
	for i, sphere := range sceneObj.Spheres {
		hit, ok := sphere.Intersect(ray).Hit()
		if ok && (response.SphereIndex < 0 || hit.T < bestT) {
			response.SphereIndex = i
			bestT = hit.T
		}
	}

	if response.SphereIndex < 0 {
		bg := sceneObj.Background
		response.Color = [3]float64{bg.R, bg.G, bg.B}
		return response
	}

	sphere := sceneObj.Spheres[response.SphereIndex]
	point := ray.Position(bestT)
	normal := sphere.NormalAt(point)
	eye := ray.Direction.Negate()
	color := sphere.Material.Lighting(sceneObj.Light, point, eye, normal)

	response.Hit = true
	response.Distance = bestT
	response.Point = xyz(point)
	response.Normal = xyz(normal)
	response.Eye = xyz(eye)
	response.Color = [3]float64{color.R, color.G, color.B}
	response.Material = extractMaterialInfo(sphere.Material)
	return response
}

func xyz(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

// handleInspect reports what the ray through pixel (x, y) hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	width, err := parseIntParam(query, "width", s.config.Width, minDimension, maxDimension)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", s.config.Height, minDimension, maxDimension)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}
	x, err := parseIntParam(query, "x", 0, 0, width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", 0, 0, height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := scene.Resolve(sceneName, s.config.ScenesDir)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, width, height, x, y))
}

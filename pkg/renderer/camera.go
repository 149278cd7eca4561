package renderer

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Camera casts rays from a fixed eye point through a flat wall facing the
// eye. Each pixel maps to a square patch of the wall; the wall's size spans
// the larger image dimension.
type Camera struct {
	eye        core.Tuple
	wallZ      float64
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera projecting the scene's wall onto a width x height image
func NewCamera(s *scene.Scene, width, height int) *Camera {
	pixelSize := s.WallSize / float64(max(width, height))
	return &Camera{
		eye:        s.Eye,
		wallZ:      s.WallZ,
		pixelSize:  pixelSize,
		halfWidth:  pixelSize * float64(width) / 2,
		halfHeight: pixelSize * float64(height) / 2,
	}
}

// PixelSize returns the world-space size of one pixel on the wall
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// WallPoint returns the point on the wall under the center of pixel (x, y).
// y grows downward in the image and upward in the world.
func (c *Camera) WallPoint(x, y int) core.Tuple {
	worldX := -c.halfWidth + c.pixelSize*(float64(x)+0.5)
	worldY := c.halfHeight - c.pixelSize*(float64(y)+0.5)
	return core.Point(worldX, worldY, c.wallZ)
}

// GetRay returns the normalized ray from the eye through pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	direction := c.WallPoint(x, y).Subtract(c.eye).Normalize()
	return core.NewRay(c.eye, direction)
}

package renderer

import (
	"context"
	"image"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// Tile represents a rectangular region of the image rendered as one unit of work
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle) *Tile {
	return &Tile{ID: id, Bounds: bounds}
}

// NewTileGrid splits a width x height image into tiles of at most
// tileSize x tileSize pixels. Edge tiles are clipped to the image.
func NewTileGrid(width, height, tileSize int) []*Tile {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil
	}

	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1)))
			tileID++
		}
	}

	return tiles
}

// TileRenderer writes the shaded pixels of a tile into a shared canvas.
// Tiles never overlap, so several tiles may render into the same canvas at once.
type TileRenderer struct {
	raytracer *Raytracer
	canvas    *canvas.Canvas
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(raytracer *Raytracer, c *canvas.Canvas) *TileRenderer {
	return &TileRenderer{raytracer: raytracer, canvas: c}
}

// RenderTile renders every pixel within the tile bounds. Cancellation is
// checked once per row.
func (tr *TileRenderer) RenderTile(ctx context.Context, tile *Tile) (RenderStats, error) {
	stats := RenderStats{Tiles: 1}
	bounds := tile.Bounds

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			color, hit := tr.raytracer.PixelColor(x, y)
			tr.canvas.WritePixel(x, y, color)
			stats.TotalPixels++
			if hit {
				stats.Hits++
			}
		}
	}

	return stats, nil
}

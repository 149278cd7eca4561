package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Hits        int           // Pixels whose ray hit a sphere
	Tiles       int           // Number of tiles rendered
	Workers     int           // Maximum number of tiles rendered concurrently
	Duration    time.Duration // Wall-clock render time
}

// Misses returns the number of pixels that show the background
func (s RenderStats) Misses() int {
	return s.TotalPixels - s.Hits
}

// Coverage returns the fraction of pixels that hit a sphere
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalPixels)
}

// add accumulates per-tile counts
func (s *RenderStats) add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.Hits += other.Hits
	s.Tiles += other.Tiles
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d hits (%.1f%%), %d tiles, %d workers, %v",
		s.TotalPixels, s.Hits, 100*s.Coverage(), s.Tiles, s.Workers, s.Duration.Round(time.Millisecond))
}

package renderer

import (
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	Tiles            int           // Number of tiles the image was split into
	Workers          int           // Number of workers used
	Duration         time.Duration // Wall-clock render time
	AverageLuminance float64       // Mean Rec. 709 luminance of the canvas
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// luminance uses Rec. 709 weights
func luminance(c core.Color) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// AverageLuminance returns the mean luminance of all pixels on the canvas
func AverageLuminance(canvas *Canvas) float64 {
	n := canvas.Width() * canvas.Height()
	if n == 0 {
		return 0
	}

	total := 0.0
	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			total += luminance(canvas.PixelAt(x, y))
		}
	}
	return total / float64(n)
}

func collectStats(canvas *Canvas, tiles []*Tile, results []TileResult, workers int, elapsed time.Duration) RenderStats {
	stats := RenderStats{
		Tiles:            len(tiles),
		Workers:          workers,
		Duration:         elapsed,
		AverageLuminance: AverageLuminance(canvas),
	}
	for _, result := range results {
		stats.TotalPixels += result.Pixels
	}
	return stats
}

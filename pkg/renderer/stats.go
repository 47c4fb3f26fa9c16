package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about a rendered frame
type RenderStats struct {
	TotalPixels     int           // Pixels collected from the workers
	TotalSamples    int           // Camera rays traced across all pixels
	SamplesPerPixel int           // Samples requested per pixel
	NumWorkers      int           // Workers in the pool
	JobsPerWorker   []int         // Pixel jobs dealt to each worker
	Duration        time.Duration // Wall time from first submit to last collect
}

// RaysPerSecond returns the camera ray throughput of the frame
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d samples (%d/pixel) on %d workers in %v (%.0f rays/s)",
		s.TotalPixels, s.TotalSamples, s.SamplesPerPixel, s.NumWorkers,
		s.Duration.Round(time.Millisecond), s.RaysPerSecond())
}

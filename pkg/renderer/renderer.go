package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidConfig wraps every RenderConfig validation failure
var ErrInvalidConfig = errors.New("invalid render config")

// ImageSink receives one accumulated color per pixel. Row 0 is the bottom row.
type ImageSink interface {
	SetPixel(col, row int, color core.Vec3)
}

// RenderConfig contains the numeric settings of a frame
type RenderConfig struct {
	Width            int   // Image width in pixels
	Height           int   // Image height in pixels
	SamplesPerPixel  int   // Camera rays per pixel
	MaxDepth         int   // Maximum bounces per camera ray
	NumWorkers       int   // Parallel workers (0 = use CPU count)
	ProgressInterval int   // Log progress every N collected pixels (0 = off)
	Seed             int64 // Random seed for the frame (0 = from the clock)
	QueueLimit       int   // Jobs queued per worker before results are drained (0 = whole frame)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0, // Auto-detect CPU count
		QueueLimit:      1024,
	}
}

// Validate reports the first setting that cannot be rendered
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: threads cannot be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	case c.ProgressInterval < 0:
		return fmt.Errorf("%w: progress interval cannot be negative, got %d", ErrInvalidConfig, c.ProgressInterval)
	case c.QueueLimit < 0:
		return fmt.Errorf("%w: queue limit cannot be negative, got %d", ErrInvalidConfig, c.QueueLimit)
	}
	return nil
}

// Renderer turns a world and camera into pixels using a per-frame thread pool
type Renderer struct {
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer for the given configuration
func NewRenderer(config RenderConfig, logger core.Logger) *Renderer {
	return &Renderer{
		config: config,
		logger: logger,
	}
}

// RenderFrame submits one job per pixel and collects the results into sink,
// draining the pool whenever a batch fills its queues.
// The world, camera and tracer must not change until it returns.
func (r *Renderer) RenderFrame(world geometry.Hitable, camera *Camera, tracer integrator.Integrator, sink ImageSink) (RenderStats, error) {
	if err := r.config.Validate(); err != nil {
		return RenderStats{}, err
	}

	width, height := r.config.Width, r.config.Height
	totalPixels := width * height
	start := time.Now()

	pool := NewThreadPool(r.config.NumWorkers, totalPixels, r.config.QueueLimit, r.config.Seed, r.logger)
	defer pool.Close()

	stats := RenderStats{
		SamplesPerPixel: r.config.SamplesPerPixel,
		NumWorkers:      pool.NumWorkers(),
	}

	handle := func(packet DataPacket) {
		sink.SetPixel(packet.Col, packet.Row, packet.Color)
		stats.TotalPixels++
		stats.TotalSamples += packet.Samples

		if r.config.ProgressInterval > 0 && stats.TotalPixels%r.config.ProgressInterval == 0 {
			r.logger.Printf("Collected %d/%d pixels (%.1f%%)\n",
				stats.TotalPixels, totalPixels, 100*float64(stats.TotalPixels)/float64(totalPixels))
		}
	}

	queued := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if queued == pool.Capacity() {
				if err := pool.Collect(handle); err != nil {
					return stats, fmt.Errorf("collect results: %w", err)
				}
				queued = 0
			}

			err := pool.Submit(ControlPacket{
				Row:      row,
				Col:      col,
				Camera:   camera,
				World:    world,
				Tracer:   tracer,
				Samples:  r.config.SamplesPerPixel,
				Width:    width,
				Height:   height,
				MaxDepth: r.config.MaxDepth,
			})
			if err != nil {
				return stats, fmt.Errorf("submit pixel (%d, %d): %w", col, row, err)
			}
			queued++
		}
	}

	if err := pool.Collect(handle); err != nil {
		return stats, fmt.Errorf("collect results: %w", err)
	}

	stats.JobsPerWorker = pool.JobCounts()
	stats.Duration = time.Since(start)
	return stats, nil
}

package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// gridSink stores pixels in a row-major grid, row 0 at the bottom
type gridSink struct {
	width, height int
	pixels        []core.Vec3
	writes        []int
}

func newGridSink(width, height int) *gridSink {
	return &gridSink{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
		writes: make([]int, width*height),
	}
}

func (g *gridSink) SetPixel(col, row int, color core.Vec3) {
	g.pixels[row*g.width+col] = color
	g.writes[row*g.width+col]++
}

func (g *gridSink) at(col, row int) core.Vec3 {
	return g.pixels[row*g.width+col]
}

// singleSphere is a white diffuse sphere at the origin seen from +Z
func singleSphere() (geometry.Hitable, *Camera) {
	world := geometry.NewHitList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1))),
	)
	config := DefaultCameraConfig()
	config.LookFrom = core.NewVec3(0, 0, 2)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.AspectRatio = 1
	return world, NewCamera(config)
}

func testConfig(size, samples, depth int) RenderConfig {
	config := DefaultRenderConfig()
	config.Width = size
	config.Height = size
	config.SamplesPerPixel = samples
	config.MaxDepth = depth
	config.NumWorkers = 3
	config.Seed = 1234
	return config
}

func TestRenderFrame_SingleSphere(t *testing.T) {
	grey := core.NewVec3(0.5, 0.5, 0.5)

	tests := []struct {
		name        string
		depth       int
		background  core.Vec3
		centerBlack bool
	}{
		{"depth 1 black background renders nothing", 1, core.Vec3{}, true},
		{"depth 1 shows the sphere as a silhouette", 1, grey, true},
		{"depth 2 lights the sphere", 2, grey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, camera := singleSphere()
			tracer := integrator.NewPathTracer(integrator.SolidBackground(tt.background))
			sink := newGridSink(21, 21)

			r := NewRenderer(testConfig(21, 1, tt.depth), &captureLogger{})
			stats, err := r.RenderFrame(world, camera, tracer, sink)
			if err != nil {
				t.Fatalf("RenderFrame: %v", err)
			}
			if stats.TotalPixels != 21*21 || stats.TotalSamples != 21*21 {
				t.Errorf("Unexpected stats %+v", stats)
			}

			center := sink.at(10, 10)
			if (center == core.Vec3{}) != tt.centerBlack {
				t.Errorf("Expected center black=%t, got %v", tt.centerBlack, center)
			}

			for _, corner := range [][2]int{{0, 0}, {20, 0}, {0, 20}, {20, 20}} {
				if got := sink.at(corner[0], corner[1]); got != tt.background {
					t.Errorf("Corner %v: expected background %v, got %v", corner, tt.background, got)
				}
			}
		})
	}
}

func TestRenderFrame_WritesEveryPixelOnce(t *testing.T) {
	world, camera := singleSphere()
	tracer := integrator.NewPathTracer(integrator.SkyBackground())
	config := testConfig(13, 2, 4)
	config.Height = 7
	sink := newGridSink(13, 7)

	stats, err := NewRenderer(config, &captureLogger{}).RenderFrame(world, camera, tracer, sink)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	for i, count := range sink.writes {
		if count != 1 {
			t.Errorf("Pixel %d written %d times", i, count)
		}
	}

	jobs := 0
	for _, n := range stats.JobsPerWorker {
		jobs += n
	}
	if jobs != 13*7 {
		t.Errorf("Expected %d jobs across workers, got %d", 13*7, jobs)
	}
	if stats.TotalSamples != 13*7*2 {
		t.Errorf("Expected %d samples, got %d", 13*7*2, stats.TotalSamples)
	}
}

// A fixed seed and worker count make the frame bit-reproducible.
func TestRenderFrame_SeededIdempotence(t *testing.T) {
	render := func() *gridSink {
		world, camera := singleSphere()
		tracer := integrator.NewPathTracer(integrator.SkyBackground())
		sink := newGridSink(16, 16)
		if _, err := NewRenderer(testConfig(16, 1, 8), &captureLogger{}).RenderFrame(world, camera, tracer, sink); err != nil {
			t.Fatalf("RenderFrame: %v", err)
		}
		return sink
	}

	first := render()
	second := render()
	for i := range first.pixels {
		if first.pixels[i] != second.pixels[i] {
			t.Fatalf("Pixel %d differs between runs: %v vs %v", i, first.pixels[i], second.pixels[i])
		}
	}
}

// Draining in small batches keeps each worker's job order, so the image is unchanged.
func TestRenderFrame_QueueLimitMatchesWholeFrame(t *testing.T) {
	render := func(queueLimit int) (*gridSink, RenderStats) {
		world, camera := singleSphere()
		tracer := integrator.NewPathTracer(integrator.SkyBackground())
		config := testConfig(9, 2, 4)
		config.QueueLimit = queueLimit
		sink := newGridSink(9, 9)
		stats, err := NewRenderer(config, &captureLogger{}).RenderFrame(world, camera, tracer, sink)
		if err != nil {
			t.Fatalf("RenderFrame with queue limit %d: %v", queueLimit, err)
		}
		return sink, stats
	}

	whole, _ := render(0)
	batched, stats := render(2)

	if stats.TotalPixels != 81 {
		t.Errorf("Expected 81 pixels, got %d", stats.TotalPixels)
	}
	for i := range whole.pixels {
		if batched.writes[i] != 1 {
			t.Errorf("Pixel %d written %d times", i, batched.writes[i])
		}
		if whole.pixels[i] != batched.pixels[i] {
			t.Fatalf("Pixel %d differs: whole frame %v, batched %v", i, whole.pixels[i], batched.pixels[i])
		}
	}
}

func TestRenderFrame_ProgressLogging(t *testing.T) {
	world, camera := singleSphere()
	tracer := integrator.NewPathTracer(integrator.SkyBackground())
	logger := &captureLogger{}

	config := testConfig(10, 1, 2)
	config.ProgressInterval = 25

	if _, err := NewRenderer(config, logger).RenderFrame(world, camera, tracer, newGridSink(10, 10)); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if got := logger.count("Collected"); got != 4 {
		t.Errorf("Expected 4 progress lines for 100 pixels every 25, got %d", got)
	}
}

func TestRenderFrame_WorkerFailure(t *testing.T) {
	world, camera := singleSphere()
	config := testConfig(4, 1, 2)

	_, err := NewRenderer(config, &captureLogger{}).RenderFrame(world, camera, panicTracer{}, newGridSink(4, 4))
	if !errors.Is(err, ErrWorkerClosed) {
		t.Errorf("Expected ErrWorkerClosed, got %v", err)
	}
}

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RenderConfig)
		valid  bool
	}{
		{"defaults", func(*RenderConfig) {}, true},
		{"zero width", func(c *RenderConfig) { c.Width = 0 }, false},
		{"negative height", func(c *RenderConfig) { c.Height = -1 }, false},
		{"zero samples", func(c *RenderConfig) { c.SamplesPerPixel = 0 }, false},
		{"zero depth", func(c *RenderConfig) { c.MaxDepth = 0 }, false},
		{"negative threads", func(c *RenderConfig) { c.NumWorkers = -2 }, false},
		{"negative progress", func(c *RenderConfig) { c.ProgressInterval = -1 }, false},
		{"negative queue limit", func(c *RenderConfig) { c.QueueLimit = -1 }, false},
		{"unlimited queue", func(c *RenderConfig) { c.QueueLimit = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultRenderConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRenderStats_String(t *testing.T) {
	stats := RenderStats{TotalPixels: 4, TotalSamples: 8, SamplesPerPixel: 2, NumWorkers: 2}
	if stats.RaysPerSecond() != 0 {
		t.Errorf("Expected zero throughput without a duration, got %f", stats.RaysPerSecond())
	}
	if stats.String() == "" {
		t.Error("Expected a summary string")
	}
}

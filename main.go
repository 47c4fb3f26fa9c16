package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/picture"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Exit codes
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// errUsage marks errors that should print the usage message
var errUsage = errors.New("usage")

// options holds everything the command line or a config file can set
type options struct {
	Output   string `json:"output"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Samples  int    `json:"samples"`
	Depth    int    `json:"depth"`
	Threads  int    `json:"threads"`
	Progress int    `json:"progress"`
	Scene    string `json:"scene"`
	Seed     int64  `json:"seed"`
	Frames   int    `json:"frames"`
	BVH      *bool  `json:"bvh,omitempty"`
	Texture  string `json:"texture"`
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr, renderer.NewDefaultLogger()))
}

func realMain(args []string, stderr io.Writer, logger core.Logger) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	if err := run(opts, logger); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitRuntime
	}
	return exitOK
}

// parseArgs reads flags, merges an optional JSON config file underneath them
// and validates the result. Flags given explicitly always win over the file.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	bvh := true
	var configPath string

	fs.StringVar(&opts.Output, "o", "render.png", "Output file (.png, .bmp or .ppm)")
	fs.IntVar(&opts.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.Height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&opts.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.Depth, "depth", 0, "Maximum ray bounces (0 = scene default)")
	fs.IntVar(&opts.Threads, "threads", 0, "Worker goroutines (0 = CPU count)")
	fs.IntVar(&opts.Progress, "progress", 0, "Report progress every N pixels (0 = off)")
	fs.StringVar(&opts.Scene, "scene", "random", "Scene: "+strings.Join(scene.Names(), ", "))
	fs.Int64Var(&opts.Seed, "seed", 0, "Random seed (0 = from the clock)")
	fs.IntVar(&opts.Frames, "frames", 1, "Number of animation frames")
	fs.BoolVar(&bvh, "bvh", true, "Accelerate intersection with a BVH")
	fs.StringVar(&opts.Texture, "texture", "", "Image file for textured scenes")
	fs.StringVar(&configPath, "config", "", "JSON config file; explicit flags override it")
	help := fs.Bool("help", false, "Show help information")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Path Tracer")
		fmt.Fprintln(stderr, "Usage: pathtracer [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if *help {
		fs.Usage()
		return options{}, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	opts.BVH = &bvh

	if configPath != "" {
		file, err := loadConfig(configPath)
		if err != nil {
			return options{}, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		opts = mergeConfig(opts, file, set)
	}

	if err := validate(opts); err != nil {
		fs.Usage()
		return options{}, err
	}
	return opts, nil
}

// loadConfig reads a JSON options file
func loadConfig(path string) (options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return options{}, fmt.Errorf("read config: %w", err)
	}
	var cfg options
	if err := json.Unmarshal(data, &cfg); err != nil {
		return options{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// mergeConfig fills every option whose flag was not set from the non-zero file value
func mergeConfig(opts, file options, set map[string]bool) options {
	take := func(flagName string, isZero bool, apply func()) {
		if !set[flagName] && !isZero {
			apply()
		}
	}

	take("o", file.Output == "", func() { opts.Output = file.Output })
	take("width", file.Width == 0, func() { opts.Width = file.Width })
	take("height", file.Height == 0, func() { opts.Height = file.Height })
	take("samples", file.Samples == 0, func() { opts.Samples = file.Samples })
	take("depth", file.Depth == 0, func() { opts.Depth = file.Depth })
	take("threads", file.Threads == 0, func() { opts.Threads = file.Threads })
	take("progress", file.Progress == 0, func() { opts.Progress = file.Progress })
	take("scene", file.Scene == "", func() { opts.Scene = file.Scene })
	take("seed", file.Seed == 0, func() { opts.Seed = file.Seed })
	take("frames", file.Frames == 0, func() { opts.Frames = file.Frames })
	take("bvh", file.BVH == nil, func() { opts.BVH = file.BVH })
	take("texture", file.Texture == "", func() { opts.Texture = file.Texture })
	return opts
}

// validate rejects values no render could use
func validate(opts options) error {
	checks := []struct {
		name  string
		value int
		min   int
	}{
		{"width", opts.Width, 0},
		{"height", opts.Height, 0},
		{"samples", opts.Samples, 0},
		{"depth", opts.Depth, 0},
		{"threads", opts.Threads, 0},
		{"progress", opts.Progress, 0},
		{"frames", opts.Frames, 1},
	}
	for _, c := range checks {
		if c.value < c.min {
			return fmt.Errorf("-%s must be at least %d, got %d", c.name, c.min, c.value)
		}
	}
	if _, err := picture.FormatFromPath(opts.Output); err != nil {
		return fmt.Errorf("-o: %w", err)
	}
	if !slices.Contains(scene.Names(), opts.Scene) {
		return fmt.Errorf("-scene: %w: %q", scene.ErrUnknownScene, opts.Scene)
	}
	return nil
}

// renderConfig resolves zero options from the scene's preferences, then from renderer defaults
func renderConfig(opts options, s *scene.Scene) renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	pick := func(values ...int) int {
		for _, v := range values {
			if v > 0 {
				return v
			}
		}
		return 0
	}

	config.Width = pick(opts.Width, s.SamplingConfig.Width, config.Width)
	config.Height = pick(opts.Height, s.SamplingConfig.Height, config.Height)
	config.SamplesPerPixel = pick(opts.Samples, s.SamplingConfig.SamplesPerPixel, config.SamplesPerPixel)
	config.MaxDepth = pick(opts.Depth, s.SamplingConfig.MaxDepth, config.MaxDepth)
	config.NumWorkers = opts.Threads
	config.ProgressInterval = opts.Progress
	config.Seed = opts.Seed
	return config
}

// frameName returns the output path of a frame; multi-frame renders get a _NNN suffix
func frameName(output string, frame, frames int) string {
	if frames <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(output, ext), frame, ext)
}

// run builds the scene and renders every frame
func run(opts options, logger core.Logger) error {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	random := core.NewRandom(seed)

	s, err := scene.ByName(opts.Scene, scene.Options{Random: random, TexturePath: opts.Texture})
	if errors.Is(err, scene.ErrUnknownScene) || errors.Is(err, scene.ErrMissingTexture) {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if err != nil {
		return err
	}

	config := renderConfig(opts, s)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	cameraConfig := s.CameraConfig
	cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)
	camera := renderer.NewCamera(cameraConfig)
	tracer := integrator.NewPathTracer(s.Background)
	useBVH := opts.BVH == nil || *opts.BVH

	logger.Printf("Rendering scene %q: %dx%d, %d samples, depth %d, %d objects, seed %d\n",
		s.Name, config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth, s.PrimitiveCount(), seed)

	for frame := 0; frame < opts.Frames; frame++ {
		if frame > 0 {
			s.AdvanceFrame()
		}

		world, err := s.World(random, useBVH)
		if err != nil {
			return err
		}
		if bvh, ok := world.(*geometry.BVHNode); ok && frame == 0 {
			logger.Printf("BVH: %v\n", bvh.Stats())
		}

		config.Seed = seed + int64(frame)<<20
		pic := picture.New(config.Width, config.Height, config.SamplesPerPixel)
		stats, err := renderer.NewRenderer(config, logger).RenderFrame(world, camera, tracer, pic)
		if err != nil {
			return fmt.Errorf("render frame %d: %w", frame, err)
		}

		path := frameName(opts.Output, frame, opts.Frames)
		n, err := pic.WriteFile(path)
		if err != nil {
			return fmt.Errorf("save frame %d: %w", frame, err)
		}
		logger.Printf("Frame %d: %v\n", frame, stats)
		logger.Printf("Render saved as %s (%d bytes)\n", path, n)
	}
	return nil
}

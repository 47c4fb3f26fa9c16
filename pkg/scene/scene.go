package scene

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var (
	// ErrUnknownScene is returned by ByName for names that are not registered
	ErrUnknownScene = errors.New("unknown scene")
	// ErrMissingTexture is returned by scenes that need a texture file when none is given
	ErrMissingTexture = errors.New("scene requires a texture image")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Objects        []geometry.Hitable
	CameraConfig   renderer.CameraConfig
	Background     integrator.Background
	SamplingConfig SamplingConfig
	Animation      Animation
}

// SamplingConfig holds the render settings a scene looks best with.
// Zero fields fall back to renderer defaults.
type SamplingConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// Animation moves Targets by Step before every frame after the first.
// Targets must also be in the scene's Objects.
type Animation struct {
	Targets []geometry.Hitable
	Step    core.Vec3
}

// Options carries what scene builders need from the caller
type Options struct {
	Random      *rand.Rand // drives procedural placement and noise tables
	TexturePath string     // image for textured scenes
}

// Builder constructs a scene
type Builder func(opts Options) (*Scene, error)

var builders = map[string]Builder{
	"random":        NewRandomScene,
	"random-moving": NewMovingSpheresScene,
	"two-spheres":   NewTwoSpheresScene,
	"two-perlin":    NewTwoPerlinSpheresScene,
	"earth":         NewEarthScene,
	"simple-light":  NewSimpleLightScene,
	"cornell":       NewCornellScene,
	"single-sphere": NewSingleSphereScene,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named scene
func ByName(name string, opts Options) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	if opts.Random == nil {
		opts.Random = core.NewRandom(0)
	}

	s, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("build scene %q: %w", name, err)
	}
	s.Name = name
	return s, nil
}

// World returns the aggregate to render: a BVH over the objects when useBVH is
// set, otherwise a flat list. It must be rebuilt after AdvanceFrame.
func (s *Scene) World(random *rand.Rand, useBVH bool) (geometry.Hitable, error) {
	if !useBVH {
		return geometry.NewHitList(s.Objects...), nil
	}
	bvh, err := geometry.NewBVH(s.Objects, s.CameraConfig.Time0, s.CameraConfig.Time1, random)
	if err != nil {
		return nil, fmt.Errorf("build BVH for scene %q: %w", s.Name, err)
	}
	return bvh, nil
}

// AdvanceFrame applies one animation step
func (s *Scene) AdvanceFrame() {
	for _, target := range s.Animation.Targets {
		target.Translate(s.Animation.Step)
	}
}

// PrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Objects)
}

// add appends objects to the scene and returns the last one
func (s *Scene) add(objects ...geometry.Hitable) geometry.Hitable {
	s.Objects = append(s.Objects, objects...)
	return objects[len(objects)-1]
}

// wideCamera is the shared view of the sphere scenes
func wideCamera() renderer.CameraConfig {
	config := renderer.DefaultCameraConfig()
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.VFov = 20
	config.FocusDistance = 10
	return config
}

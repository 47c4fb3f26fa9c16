package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewTwoSpheresScene creates two large checkered spheres stacked vertically
func NewTwoSpheresScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   wideCamera(),
		Background:     integrator.SkyBackground(),
		SamplingConfig: SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
	}

	checker := material.NewTexturedLambertian(material.NewCheckeredColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	s.add(geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker))
	top := s.add(geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker))

	s.Animation = Animation{Targets: []geometry.Hitable{top}, Step: core.NewVec3(0, 0.2, 0)}
	return s, nil
}

// NewTwoPerlinSpheresScene creates a noise-textured sphere resting on a noise-textured ground
func NewTwoPerlinSpheresScene(opts Options) (*Scene, error) {
	s := &Scene{
		CameraConfig:   wideCamera(),
		Background:     integrator.SkyBackground(),
		SamplingConfig: SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
	}

	marble := perlinMaterial(opts)
	s.add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	ball := s.add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))

	s.Animation = Animation{Targets: []geometry.Hitable{ball}, Step: core.NewVec3(0, 0, 0.1)}
	return s, nil
}

// NewEarthScene wraps an image texture around a single sphere
func NewEarthScene(opts Options) (*Scene, error) {
	if opts.TexturePath == "" {
		return nil, ErrMissingTexture
	}

	texture, err := loaders.LoadImageTexture(opts.TexturePath)
	if err != nil {
		return nil, fmt.Errorf("load earth texture: %w", err)
	}

	s := &Scene{
		CameraConfig:   wideCamera(),
		Background:     integrator.SkyBackground(),
		SamplingConfig: SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
	}

	globe := s.add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))

	s.Animation = Animation{Targets: []geometry.Hitable{globe}, Step: core.NewVec3(0.1, 0, 0)}
	return s, nil
}

func perlinMaterial(opts Options) *material.Material {
	noise := material.NewPerlin(opts.Random)
	return material.NewTexturedLambertian(material.NewNoiseTexture(noise, 4))
}

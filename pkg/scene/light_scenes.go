package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewSimpleLightScene lights the two noise spheres with a rectangular lamp in the dark
func NewSimpleLightScene(opts Options) (*Scene, error) {
	camera := renderer.DefaultCameraConfig()
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	camera.VFov = 20

	s := &Scene{
		CameraConfig:   camera,
		Background:     integrator.SolidBackground(core.Vec3{}),
		SamplingConfig: SamplingConfig{SamplesPerPixel: 400, MaxDepth: 50},
	}

	marble := perlinMaterial(opts)
	s.add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	ball := s.add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))

	lamp := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	s.add(geometry.NewXYRect(3, 5, 1, 3, -2, lamp))

	s.Animation = Animation{Targets: []geometry.Hitable{ball}, Step: core.NewVec3(0, 0, 0.1)}
	return s, nil
}

// NewCornellScene creates a classic Cornell box: red and green side walls,
// a ceiling lamp and two white blocks
func NewCornellScene(opts Options) (*Scene, error) {
	camera := renderer.DefaultCameraConfig()
	camera.LookFrom = core.NewVec3(278, 278, -800)
	camera.LookAt = core.NewVec3(278, 278, 0)
	camera.VFov = 40
	camera.AspectRatio = 1

	s := &Scene{
		CameraConfig: camera,
		Background:   integrator.SolidBackground(core.Vec3{}),
		SamplingConfig: SamplingConfig{
			Width:           600,
			Height:          600,
			SamplesPerPixel: 200,
			MaxDepth:        50,
		},
	}

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	lamp := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	// Cornell box dimensions (standard 555x555x555 units)
	const size = 555.0

	s.add(
		geometry.NewYZRect(0, size, 0, size, size, green), // left wall
		geometry.NewYZRect(0, size, 0, size, 0, red),      // right wall
		geometry.NewXZRect(0, size, 0, size, 0, white),    // floor
		geometry.NewXZRect(0, size, 0, size, size, white), // ceiling
		geometry.NewXYRect(0, size, 0, size, size, white), // back wall
	)
	s.add(geometry.NewXZRect(213, 343, 227, 332, size-1, lamp))

	short := s.add(geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white))
	s.add(geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white))

	s.Animation = Animation{Targets: []geometry.Hitable{short}, Step: core.NewVec3(0, 0, -10)}
	return s, nil
}

// NewSingleSphereScene is one white diffuse sphere at the origin seen from +Z
func NewSingleSphereScene(opts Options) (*Scene, error) {
	camera := renderer.DefaultCameraConfig()
	camera.LookFrom = core.NewVec3(0, 0, 2)
	camera.LookAt = core.NewVec3(0, 0, 0)

	s := &Scene{
		CameraConfig:   camera,
		Background:     integrator.SkyBackground(),
		SamplingConfig: SamplingConfig{SamplesPerPixel: 50, MaxDepth: 10},
	}

	sphere := s.add(geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1))))

	s.Animation = Animation{Targets: []geometry.Hitable{sphere}, Step: core.NewVec3(0.05, 0, 0)}
	return s, nil
}

package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewRandomScene creates the classic field of small random spheres around
// three large ones: glass, diffuse and metal
func NewRandomScene(opts Options) (*Scene, error) {
	return newSphereField(opts.Random, false), nil
}

// NewMovingSpheresScene is the random scene with the small diffuse spheres
// bouncing upward while the shutter is open
func NewMovingSpheresScene(opts Options) (*Scene, error) {
	return newSphereField(opts.Random, true), nil
}

func newSphereField(random *rand.Rand, moving bool) *Scene {
	camera := wideCamera()
	camera.Aperture = 0.1
	if moving {
		camera.Time0, camera.Time1 = 0, 1
	}

	s := &Scene{
		CameraConfig: camera,
		Background:   integrator.SkyBackground(),
		SamplingConfig: SamplingConfig{
			Width:           1200,
			Height:          675,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	if moving {
		ground = material.NewTexturedLambertian(material.NewCheckeredColors(
			core.NewVec3(0.2, 0.3, 0.1),
			core.NewVec3(0.9, 0.9, 0.9),
		))
	}
	s.add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(random, 0, 1).MultiplyVec(core.RandomVec3(random, 0, 1))
				diffuse := material.NewLambertian(albedo)
				if moving {
					end := center.Add(core.NewVec3(0, core.RandomRange(random, 0, 0.5), 0))
					s.add(geometry.NewMovingSphere(center, end, 0, 1, 0.2, diffuse))
				} else {
					s.add(geometry.NewSphere(center, 0.2, diffuse))
				}
			case chooseMat < 0.95:
				albedo := core.RandomVec3(random, 0.5, 1)
				fuzz := core.RandomRange(random, 0, 0.5)
				s.add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	glass := s.add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	diffuse := s.add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	metal := s.add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	s.Animation = Animation{
		Targets: []geometry.Hitable{glass, diffuse, metal},
		Step:    core.NewVec3(0, 0, 0.1),
	}

	return s
}

package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func closeVec(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestCamera_PinholeRays(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	random := rand.New(rand.NewSource(1))
	aspect := 16.0 / 9.0

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-aspect, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(aspect, 1, -1)},
		{"top middle", 0.5, 1, core.NewVec3(0, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, random)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected pinhole origin at zero, got %v", ray.Origin)
			}
			if !closeVec(ray.Direction, tt.direction, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_LookAt(t *testing.T) {
	config := DefaultCameraConfig()
	config.LookFrom = core.NewVec3(3, 3, 2)
	config.LookAt = core.NewVec3(0, 0, -1)
	config.VFov = 20
	camera := NewCamera(config)

	ray := camera.GetRay(0.5, 0.5, rand.New(rand.NewSource(1)))
	expected := config.LookAt.Subtract(config.LookFrom).Normalize()
	if !closeVec(ray.Direction.Normalize(), expected, 1e-9) {
		t.Errorf("Expected center ray toward %v, got %v", expected, ray.Direction.Normalize())
	}
}

func TestCamera_DepthOfField(t *testing.T) {
	config := DefaultCameraConfig()
	config.LookFrom = core.NewVec3(0, 0, 5)
	config.LookAt = core.NewVec3(0, 0, 0)
	config.Aperture = 0.5
	config.FocusDistance = 5
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(3))

	var focus core.Vec3
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.3, 0.6, random)

		offset := ray.Origin.Subtract(config.LookFrom)
		if offset.Length() > 0.25+1e-12 {
			t.Fatalf("Lens offset %v outside aperture radius", offset)
		}
		if math.Abs(offset.Z) > 1e-12 {
			t.Fatalf("Lens offset %v should lie in the lens plane", offset)
		}

		// Every ray through the same viewport point converges on the focus plane
		p := ray.At(1)
		if i == 0 {
			focus = p
		} else if !closeVec(p, focus, 1e-9) {
			t.Fatalf("Expected rays to converge at %v, got %v", focus, p)
		}
	}
	if math.Abs(focus.Z) > 1e-9 {
		t.Errorf("Expected focus plane at z=0, got %v", focus)
	}
}

func TestCamera_ShutterTime(t *testing.T) {
	tests := []struct {
		name         string
		time0, time1 float64
	}{
		{"open shutter", 0.2, 0.7},
		{"instant", 0.4, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			config.Time0, config.Time1 = tt.time0, tt.time1
			camera := NewCamera(config)
			random := rand.New(rand.NewSource(5))

			for i := 0; i < 100; i++ {
				ray := camera.GetRay(0.5, 0.5, random)
				if ray.Time < tt.time0 || ray.Time > tt.time1 {
					t.Fatalf("Ray time %f outside [%f, %f]", ray.Time, tt.time0, tt.time1)
				}
			}
		})
	}
}

package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_AlwaysScattersIntoHemisphere(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	lambertian := NewLambertian(albedo)
	random := rand.New(rand.NewSource(42))

	normal := core.NewVec3(0, 0, 1)
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		FrontFace: true,
	}
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.3)

	for i := 0; i < 500; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, random)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Scattered.Direction.Dot(normal) < 0 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Direction.IsNaN() {
			t.Fatal("Scattered direction is NaN")
		}
		if scatter.Attenuation != albedo {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Time != 0.3 {
			t.Errorf("Expected scattered ray to keep time 0.3, got %f", scatter.Scattered.Time)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Errorf("Expected scattered ray to start at the hit point, got %v", scatter.Scattered.Origin)
		}
	}
}

func TestLambertian_TexturedAttenuationUsesHitCoordinates(t *testing.T) {
	texture := NewCheckeredColors(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))
	lambertian := NewTexturedLambertian(texture)
	random := rand.New(rand.NewSource(1))

	// sin(10*0.1)^3 > 0 picks the even color
	hit := &HitRecord{Point: core.NewVec3(0.1, 0.1, 0.1), Normal: core.NewVec3(0, 1, 0)}
	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, random)
	if scatter.Attenuation != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected even color, got %v", scatter.Attenuation)
	}

	hit.Point = core.NewVec3(-0.1, 0.1, 0.1)
	scatter, _ = lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, random)
	if scatter.Attenuation != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected odd color, got %v", scatter.Attenuation)
	}
}

func TestLambertian_DoesNotEmit(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	if e := lambertian.Emitted(0.5, 0.5, core.Vec3{}); e != (core.Vec3{}) {
		t.Errorf("Expected no emission, got %v", e)
	}
}

func TestLambertian_MeanDirectionFollowsNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	random := rand.New(rand.NewSource(3))
	normal := core.NewVec3(0, 1, 0)
	hit := &HitRecord{Normal: normal}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	var sum core.Vec3
	const n = 5000
	for i := 0; i < n; i++ {
		scatter, _ := lambertian.Scatter(ray, hit, random)
		sum = sum.Add(scatter.Scattered.Direction.Normalize())
	}
	mean := sum.Divide(n)

	// For a cosine distribution the mean direction is (0, 2/3, 0)
	if math.Abs(mean.Y-2.0/3.0) > 0.03 || math.Abs(mean.X) > 0.03 || math.Abs(mean.Z) > 0.03 {
		t.Errorf("Expected mean direction near (0, 0.667, 0), got %v", mean)
	}
}

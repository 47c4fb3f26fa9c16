package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting their own surface
const shadowAcneEpsilon = 0.001

// PathTracer implements recursive unidirectional path tracing
type PathTracer struct {
	Background Background
}

// NewPathTracer creates a path tracer with the given miss color source
func NewPathTracer(background Background) *PathTracer {
	return &PathTracer{Background: background}
}

// RayColor computes the color for a single ray.
// Emitted light is added at every hit; scattering multiplies in the material attenuation
// and recurses until the material absorbs the ray or depth runs out.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Hitable, depth int, random *rand.Rand) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, shadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return pt.Background.Value(ray)
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return emitted
	}

	incoming := pt.RayColor(scatter.Scattered, world, depth-1, random)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

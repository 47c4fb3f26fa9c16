package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray after at most depth bounces.
	// Implementations must be safe for concurrent use with distinct random sources.
	RayColor(ray core.Ray, world geometry.Hitable, depth int, random *rand.Rand) core.Vec3
}

// Background is what a ray sees when it leaves the scene
type Background struct {
	Sky   bool      // vertical white to blue gradient instead of a flat color
	Color core.Vec3 // flat color when Sky is false
}

// SolidBackground returns a constant background. Black makes emitters the only light.
func SolidBackground(color core.Vec3) Background {
	return Background{Color: color}
}

// SkyBackground returns the white-to-blue sky gradient
func SkyBackground() Background {
	return Background{Sky: true}
}

var (
	skyHorizon = core.NewVec3(1.0, 1.0, 1.0)
	skyZenith  = core.NewVec3(0.5, 0.7, 1.0)
)

// Value returns the background color seen along ray
func (b Background) Value(ray core.Ray) core.Vec3 {
	if !b.Sky {
		return b.Color
	}
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyHorizon.Lerp(skyZenith, t)
}

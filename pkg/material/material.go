package material

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Kind selects the scattering behavior of a Material
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
	KindDiffuseLight
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	case KindDiffuseLight:
		return "diffuse_light"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Material is a closed set of surface behaviors selected by Kind.
// A Material is immutable once built and may be shared by any number of primitives.
type Material struct {
	Kind            Kind
	Albedo          Texture // Reflectance for lambertian/metal, radiance for diffuse lights
	Fuzz            float64 // Metal only: 0 = perfect mirror, 1 = very fuzzy
	RefractiveIndex float64 // Dielectric only
}

// Scatter computes the outgoing ray and attenuation for a hit, or false when the ray is absorbed
func (m *Material) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(rayIn, hit, random)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, random)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit)
	case KindDiffuseLight:
		return ScatterResult{}, false
	default:
		panic(fmt.Sprintf("material: unknown kind %v", m.Kind))
	}
}

// Emitted returns the light given off at the hit point; black for everything but diffuse lights
func (m *Material) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	if m.Kind != KindDiffuseLight {
		return core.Vec3{}
	}
	return m.Albedo.Value(u, v, p)
}

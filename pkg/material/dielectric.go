package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewDielectric creates a clear refractive material such as glass (1.5) or water (1.33)
func NewDielectric(refractiveIndex float64) *Material {
	return &Material{
		Kind:            KindDielectric,
		Albedo:          NewSolidColor(core.NewVec3(1, 1, 1)),
		RefractiveIndex: refractiveIndex,
	}
}

// scatterDielectric always refracts. Fresnel reflection and total internal
// reflection are not modelled; past the critical angle Refract keeps the
// result finite and the ray continues along the clamped direction.
func (m *Material) scatterDielectric(rayIn core.Ray, hit *HitRecord) (ScatterResult, bool) {
	refractionRatio := m.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / m.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	refracted := core.Refract(unitDirection, hit.Normal, refractionRatio)

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, refracted, rayIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

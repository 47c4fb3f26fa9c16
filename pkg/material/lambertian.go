package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// NewLambertian creates a diffuse material with a solid color
func NewLambertian(albedo core.Vec3) *Material {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a diffuse material with a texture
func NewTexturedLambertian(albedo Texture) *Material {
	return &Material{Kind: KindLambertian, Albedo: albedo}
}

// scatterLambertian bounces toward normal + random unit vector, which is cosine distributed
func (m *Material) scatterLambertian(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))

	// The random vector can cancel the normal almost exactly
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: m.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

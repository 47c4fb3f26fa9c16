package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// NewDiffuseLight creates a light-emitting material with constant radiance
func NewDiffuseLight(emission core.Vec3) *Material {
	return NewTexturedDiffuseLight(NewSolidColor(emission))
}

// NewTexturedDiffuseLight creates a light whose radiance varies over the surface
func NewTexturedDiffuseLight(emission Texture) *Material {
	return &Material{Kind: KindDiffuseLight, Albedo: emission}
}

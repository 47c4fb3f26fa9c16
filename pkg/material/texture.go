package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckeredTexture alternates between two textures in a 3D checker pattern
type CheckeredTexture struct {
	Odd   Texture
	Even  Texture
	Scale float64 // Frequency of the checks in world units
}

// NewCheckeredTexture creates a checker pattern from two textures
func NewCheckeredTexture(odd, even Texture) *CheckeredTexture {
	return &CheckeredTexture{Odd: odd, Even: even, Scale: 10}
}

// NewCheckeredColors creates a checker pattern from two solid colors
func NewCheckeredColors(odd, even core.Vec3) *CheckeredTexture {
	return NewCheckeredTexture(NewSolidColor(odd), NewSolidColor(even))
}

// Value picks Odd where the product of the scaled sines is negative
func (c *CheckeredTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// NoiseTexture is a grey Perlin noise pattern
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture over the given Perlin tables
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{noise: noise, Scale: scale}
}

// Value returns white scaled by the noise at the scaled point
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	return core.NewVec3(1, 1, 1).Multiply(n.noise.Noise(p.Multiply(n.Scale)))
}

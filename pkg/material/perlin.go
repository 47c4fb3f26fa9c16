package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin holds the random lattice values and permutation tables for value noise
type Perlin struct {
	ranfloat [perlinPointCount]float64
	perm     [3][perlinPointCount]int
}

// NewPerlin builds the lattice from the given generator
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.ranfloat {
		p.ranfloat[i] = random.Float64()
	}
	for axis := range p.perm {
		p.perm[axis] = generatePerm(random)
	}
	return p
}

// Noise returns a smoothly varying value in [0, 1) at point p
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u := hermite(point.X - fx)
	v := hermite(point.Y - fy)
	w := hermite(point.Z - fz)

	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranfloat[p.perm[0][(i+di)&255]^
					p.perm[1][(j+dj)&255]^
					p.perm[2][(k+dk)&255]]
			}
		}
	}

	return trilinear(c, u, v, w)
}

func hermite(t float64) float64 {
	return t * t * (3 - 2*t)
}

func trilinear(c [2][2][2]float64, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) * c[i][j][k]
			}
		}
	}
	return accum
}

// generatePerm returns a shuffled identity permutation
func generatePerm(random *rand.Rand) [perlinPointCount]int {
	var p [perlinPointCount]int
	for i := range p {
		p[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		p[i], p[target] = p[target], p[i]
	}
	return p
}

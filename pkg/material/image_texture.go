package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a decoded bitmap
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the texture with nearest-neighbor filtering.
// UV is clamped to [0,1] and V is flipped because image rows run top to bottom.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	// Cyan makes a missing texture obvious in the render
	if len(t.Pixels) == 0 || t.Width <= 0 || t.Height <= 0 {
		return core.NewVec3(0, 1, 1)
	}

	u = clamp(u, 0, 1)
	v = 1.0 - clamp(v, 0, 1)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// u or v of exactly 1.0 maps one past the last pixel
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

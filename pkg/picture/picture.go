// Package picture accumulates rendered pixels and encodes them to image files.
package picture

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Picture is an image buffer of accumulated sample sums.
// Row 0 is the bottom row; encoders write rows in their own order.
type Picture struct {
	Width   int
	Height  int
	Samples int // samples summed into each pixel
	pixels  []core.Vec3
}

// New creates a black picture whose pixels will each hold the sum of samples colors
func New(width, height, samples int) *Picture {
	return &Picture{
		Width:   width,
		Height:  height,
		Samples: samples,
		pixels:  make([]core.Vec3, width*height),
	}
}

// SetPixel stores the accumulated color of a pixel
func (p *Picture) SetPixel(col, row int, color core.Vec3) {
	p.pixels[row*p.Width+col] = color
}

// Pixel returns the accumulated color of a pixel
func (p *Picture) Pixel(col, row int) core.Vec3 {
	return p.pixels[row*p.Width+col]
}

// Color returns the display color of a pixel: averaged over the samples,
// gamma 2 corrected and quantized to 8 bits
func (p *Picture) Color(col, row int) color.RGBA {
	c := p.Pixel(col, row)
	if p.Samples > 1 {
		c = c.Divide(float64(p.Samples))
	}
	c = c.GammaCorrect(2.0)

	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

// toByte maps [0,1) onto 0..255; NaN and negatives become 0
func toByte(x float64) uint8 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return uint8(256 * math.Min(x, 0.999))
}

// Image converts the picture to a top-down RGBA image
func (p *Picture) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		row := p.Height - 1 - y
		for x := 0; x < p.Width; x++ {
			img.SetRGBA(x, y, p.Color(x, row))
		}
	}
	return img
}

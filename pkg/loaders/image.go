package loaders

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ImageData is a decoded bitmap with normalized RGB pixels
type ImageData struct {
	Width  int
	Height int
	Format string      // Decoder that recognized the file: png, jpeg or bmp
	Pixels []core.Vec3 // Row-major, top row first, components in [0, 1]
}

// LoadImage decodes a PNG, JPEG or BMP file. The format is sniffed from the header,
// not the extension.
func LoadImage(path string) (*ImageData, error) {
	img, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	data := &ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
		Pixels: make([]core.Vec3, 0, bounds.Dx()*bounds.Dy()),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			data.Pixels = append(data.Pixels, normalize(img.At(x, y)))
		}
	}
	return data, nil
}

// LoadImageTexture loads an image file as a texture
func LoadImageTexture(path string) (*material.ImageTexture, error) {
	data, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}

func decodeFile(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, format, nil
}

// normalize maps a color to [0, 1] per channel. Alpha is dropped, not multiplied in,
// so non-premultiplied sources keep their stored RGB even when fully transparent.
func normalize(c color.Color) core.Vec3 {
	var r, g, b uint32
	switch c := c.(type) {
	case color.NRGBA:
		r, g, b = uint32(c.R)*0x101, uint32(c.G)*0x101, uint32(c.B)*0x101
	case color.NRGBA64:
		r, g, b = uint32(c.R), uint32(c.G), uint32(c.B)
	default:
		n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
		r, g, b = uint32(n.R), uint32(n.G), uint32(n.B)
	}
	const full = 0xffff
	return core.NewVec3(float64(r)/full, float64(g)/full, float64(b)/full)
}

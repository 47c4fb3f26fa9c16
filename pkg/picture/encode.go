package picture

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned for output paths whose extension has no encoder
var ErrUnknownFormat = errors.New("picture: unknown image format")

// Format selects an output encoding
type Format int

const (
	FormatPNG Format = iota // top-down, image/png
	FormatBMP               // 24-bit DIB, stored bottom-up by the encoder
	FormatPPM               // ASCII P3, top-down
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatPPM:
		return "ppm"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".ppm":
		return FormatPPM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// WriteFile encodes the picture in the format named by the path's extension
// and returns the number of bytes written
func (p *Picture) WriteFile(path string) (int, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	n, err := p.Encode(file, format)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close %s: %w", path, closeErr)
	}
	return n, err
}

// Encode writes the picture to w and returns the number of bytes written
func (p *Picture) Encode(w io.Writer, format Format) (int, error) {
	cw := &countingWriter{w: w}
	buf := bufio.NewWriter(cw)

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(buf, p.Image())
	case FormatBMP:
		err = bmp.Encode(buf, p.Image())
	case FormatPPM:
		err = p.encodePPM(buf)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return cw.n, fmt.Errorf("encode %v: %w", format, err)
	}

	if err := buf.Flush(); err != nil {
		return cw.n, fmt.Errorf("encode %v: %w", format, err)
	}
	return cw.n, nil
}

// encodePPM writes a plain-text P3 pixmap, top row first
func (p *Picture) encodePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", p.Width, p.Height); err != nil {
		return err
	}
	for row := p.Height - 1; row >= 0; row-- {
		for col := 0; col < p.Width; col++ {
			c := p.Color(col, row)
			if _, err := fmt.Fprintf(w, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}
	return nil
}

// countingWriter tracks how many bytes reach the underlying writer
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += n
	return n, err
}

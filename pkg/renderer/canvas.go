package renderer

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ErrMalformedPPM is returned when a PPM stream cannot be parsed
var ErrMalformedPPM = errors.New("renderer: malformed ppm")

// ppmLineWidth is the longest line WritePPM emits
const ppmLineWidth = 70

// maxPPMPixels bounds the canvas ReadPPM will allocate
const maxPPMPixels = 1 << 26

// Canvas is a grid of colors, row-major from the top left
type Canvas struct {
	width, height int
	pixels        []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// WritePixel sets the color at (x, y)
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.width+x]
}

// quantize maps a channel value to 0-255 as floor(v*256), clamped
func quantize(v float64) int {
	q := math.Floor(v * 256)
	switch {
	case math.IsNaN(q) || q < 0:
		return 0
	case q > 255:
		return 255
	}
	return int(q)
}

// ToImage converts the canvas to an 8-bit RGBA image
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(quantize(p.R)),
				G: uint8(quantize(p.G)),
				B: uint8(quantize(p.B)),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM writes the canvas as a plain-text P3 PPM. Every row starts a
// new line, no line exceeds 70 characters, and the output ends with a
// newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			p := c.PixelAt(x, y)
			for _, v := range [3]float64{p.R, p.G, p.B} {
				token := strconv.Itoa(quantize(v))
				if lineLen > 0 && lineLen+1+len(token) > ppmLineWidth {
					bw.WriteByte('\n')
					lineLen = 0
				}
				if lineLen > 0 {
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(token)
				lineLen += len(token)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// ReadPPM parses a P3 PPM. Channel values are scaled by the file's maximum
// value, so a canvas written by WritePPM reads back to colors that
// quantize to the same bytes.
func ReadPPM(r io.Reader) (*Canvas, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("missing %s: %w", what, ErrMalformedPPM)
		}
		return scanner.Text(), nil
	}
	nextInt := func(what string) (int, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("bad %s %q: %w", what, tok, ErrMalformedPPM)
		}
		return n, nil
	}

	magic, err := next("magic number")
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, fmt.Errorf("magic number %q: %w", magic, ErrMalformedPPM)
	}

	width, err := nextInt("width")
	if err != nil {
		return nil, err
	}
	height, err := nextInt("height")
	if err != nil {
		return nil, err
	}
	maxValue, err := nextInt("maximum value")
	if err != nil {
		return nil, err
	}
	if width > 0 && height > maxPPMPixels/width {
		return nil, fmt.Errorf("image size %dx%d too large: %w", width, height, ErrMalformedPPM)
	}
	if maxValue == 0 {
		return nil, fmt.Errorf("zero maximum value: %w", ErrMalformedPPM)
	}

	canvas := NewCanvas(width, height)
	scale := float64(maxValue)
	for i := range canvas.pixels {
		var rgb [3]float64
		for ch := range rgb {
			v, err := nextInt("pixel value")
			if err != nil {
				return nil, err
			}
			if v > maxValue {
				return nil, fmt.Errorf("pixel value %d above %d: %w", v, maxValue, ErrMalformedPPM)
			}
			rgb[ch] = float64(v) / scale
		}
		canvas.pixels[i] = core.NewColor(rgb[0], rgb[1], rgb[2])
	}

	return canvas, nil
}

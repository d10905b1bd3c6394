package renderer

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Camera maps a pixel canvas onto a view of the world. The canvas sits
// one unit in front of the eye, which is at the origin looking down -z
// until a view transform moves it.
type Camera struct {
	hsize, vsize int
	fov          float64
	transform    core.Matrix
	inverse      core.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with hsize x vsize pixels and a horizontal
// field of view in radians
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		hsize:     hsize,
		vsize:     vsize,
		fov:       fov,
		transform: core.Identity(),
		inverse:   core.Identity(),
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c
}

// NewCameraFromConfig creates a camera positioned by a scene's camera config
func NewCameraFromConfig(config scene.CameraConfig) *Camera {
	c := NewCamera(config.Width, config.Height, config.FOV)
	c.SetTransform(config.View())
	return c
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int { return c.vsize }

// FieldOfView returns the horizontal field of view in radians
func (c *Camera) FieldOfView() float64 { return c.fov }

// PixelSize returns the world-space size of one pixel on the canvas
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix { return c.transform }

// SetTransform replaces the view transform. It panics if t is singular.
func (c *Camera) SetTransform(t core.Matrix) {
	c.transform = t
	c.inverse = t.MustInverse()
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	return core.NewRay(origin, pixel.Subtract(origin).Normalize())
}

// Render traces every pixel in order on the calling goroutine
func (c *Camera) Render(w *scene.World) *Canvas {
	canvas := NewCanvas(c.hsize, c.vsize)
	for y := 0; y < c.vsize; y++ {
		for x := 0; x < c.hsize; x++ {
			canvas.WritePixel(x, y, w.ColorAt(c.RayForPixel(x, y)))
		}
	}
	return canvas
}

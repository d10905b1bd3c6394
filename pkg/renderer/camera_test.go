package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

func approxTuple(a, b core.Tuple, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol &&
		math.Abs(a.Z-b.Z) < tol && math.Abs(a.W-b.W) < tol
}

func approxColor(a, b core.Color, tol float64) bool {
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol && math.Abs(a.B-b.B) < tol
}

func TestNewCamera(t *testing.T) {
	c := NewCamera(160, 120, math.Pi/2)

	if c.HSize() != 160 || c.VSize() != 120 {
		t.Errorf("Expected 160x120, got %dx%d", c.HSize(), c.VSize())
	}
	if c.FieldOfView() != math.Pi/2 {
		t.Errorf("Expected field of view π/2, got %f", c.FieldOfView())
	}
	if !c.Transform().Equals(core.Identity()) {
		t.Errorf("Expected identity transform, got %v", c.Transform())
	}
}

func TestCamera_PixelSize(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
	}{
		{"horizontal canvas", 200, 125},
		{"vertical canvas", 125, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(tt.hsize, tt.vsize, math.Pi/2)
			if !core.FloatEquals(c.PixelSize(), 0.01) {
				t.Errorf("Expected pixel size 0.01, got %f", c.PixelSize())
			}
		})
	}
}

func TestCamera_RayForPixel(t *testing.T) {
	s2 := math.Sqrt2 / 2

	tests := []struct {
		name      string
		transform core.Matrix
		px, py    int
		origin    core.Tuple
		direction core.Tuple
	}{
		{
			name:      "through the center of the canvas",
			transform: core.Identity(),
			px:        100, py: 50,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0, 0, -1),
		},
		{
			name:      "through a corner of the canvas",
			transform: core.Identity(),
			px:        0, py: 0,
			origin:    core.Point(0, 0, 0),
			direction: core.Vector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "when the camera is transformed",
			transform: core.Translation(0, -2, 5).Then(core.RotationY(math.Pi / 4)),
			px:        100, py: 50,
			origin:    core.Point(0, 2, -5),
			direction: core.Vector(s2, 0, -s2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(201, 101, math.Pi/2)
			c.SetTransform(tt.transform)

			r := c.RayForPixel(tt.px, tt.py)
			if !approxTuple(r.Origin, tt.origin, 1e-4) {
				t.Errorf("Expected origin %v, got %v", tt.origin, r.Origin)
			}
			if !approxTuple(r.Direction, tt.direction, 1e-4) {
				t.Errorf("Expected direction %v, got %v", tt.direction, r.Direction)
			}
			if r.Bounces != 0 {
				t.Errorf("Expected a primary ray, got %d bounces", r.Bounces)
			}
		})
	}
}

func defaultWorldCamera() *Camera {
	c := NewCamera(11, 11, math.Pi/2)
	c.SetTransform(core.ViewTransform(core.Point(0, 0, -5), core.Point(0, 0, 0), core.Vector(0, 1, 0)))
	return c
}

func TestCamera_Render(t *testing.T) {
	image := defaultWorldCamera().Render(scene.DefaultWorld())

	if image.Width() != 11 || image.Height() != 11 {
		t.Fatalf("Expected 11x11 canvas, got %dx%d", image.Width(), image.Height())
	}

	expected := core.NewColor(0.38066, 0.47583, 0.2855)
	if got := image.PixelAt(5, 5); !approxColor(got, expected, 1e-4) {
		t.Errorf("Expected %v at (5,5), got %v", expected, got)
	}
}

func TestNewCameraFromConfig(t *testing.T) {
	config := scene.CameraConfig{
		Width:  11,
		Height: 11,
		FOV:    math.Pi / 2,
		From:   core.Point(0, 0, -5),
		To:     core.Point(0, 0, 0),
		Up:     core.Vector(0, 1, 0),
	}

	c := NewCameraFromConfig(config)
	if !c.Transform().Equals(config.View()) {
		t.Errorf("Expected view transform %v, got %v", config.View(), c.Transform())
	}

	r := c.RayForPixel(5, 5)
	if !approxTuple(r.Origin, core.Point(0, 0, -5), 1e-9) {
		t.Errorf("Expected origin at the eye, got %v", r.Origin)
	}
}

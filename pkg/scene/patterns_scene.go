package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewPatternTestScene creates a row of shapes showing each procedural
// pattern, over a floor that blends two stripe patterns
func NewPatternTestScene(cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  640,
		Height: 320,
		FOV:    math.Pi / 3,
		From:   core.Point(0, 3, -7),
		To:     core.Point(0, 1, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-5, 10, -10), core.White))

	white := core.NewColor(0.95, 0.95, 0.95)
	red := core.NewColor(0.8, 0.15, 0.15)
	green := core.NewColor(0.15, 0.7, 0.25)
	blue := core.NewColor(0.15, 0.25, 0.8)
	yellow := core.NewColor(0.9, 0.8, 0.2)

	// Floor: two perpendicular stripe patterns averaged into a plaid
	across := material.NewStripes(white, blue)
	along := material.NewStripes(white, green)
	along.SetTransform(core.RotationY(math.Pi / 2))
	plaid := material.NewBlend(across, along)
	plaid.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	floor := material.DefaultMaterial()
	floor.Pattern = w.AddPattern(plaid)
	floor.Specular = 0
	addFloor(w, floor)

	stripes := material.NewStripes(red, white)
	stripes.SetTransform(core.Scaling(0.25, 0.25, 0.25).Then(core.RotationZ(math.Pi / 4)))

	gradient := material.NewGradient(red, yellow)
	gradient.SetTransform(core.Scaling(2, 1, 1).Then(core.Translation(-1, 0, 0)))

	rings := material.NewRing(blue, white)
	rings.SetTransform(core.Scaling(0.2, 0.2, 0.2).Then(core.RotationX(math.Pi / 2)))

	checker := material.NewChecker(green, white)
	checker.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	radial := material.NewRadialGradient(yellow, blue)
	radial.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	shapes := []struct {
		shape   geometry.Shape
		pattern material.Pattern
		x       float64
	}{
		{geometry.NewSphere(), stripes, -4},
		{geometry.NewSphere(), gradient, -2},
		{geometry.NewCube(), rings, 0},
		{geometry.NewCappedCylinder(-1, 1), checker, 2},
		{geometry.NewSphere(), radial, 4},
	}

	for _, s := range shapes {
		transform := core.Scaling(0.8, 0.8, 0.8)
		if _, ok := s.shape.(*geometry.Cube); ok {
			transform = transform.Then(core.RotationY(math.Pi / 5))
		}
		s.shape.SetTransform(transform.Then(core.Translation(s.x, 0.8, 0)))
		m := material.DefaultMaterial()
		m.Pattern = w.AddPattern(s.pattern)
		s.shape.SetMaterial(m)
		w.AddObject(s.shape)
	}

	return &Scene{World: w, Camera: camera}
}

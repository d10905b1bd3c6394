package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewCylinderTestScene creates capped and open cylinders side by side
func NewCylinderTestScene(cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  400,
		Height: 225,
		FOV:    math.Pi / 3,
		From:   core.Point(0, 2.5, -6),
		To:     core.Point(0, 1, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-5, 8, -6), core.White))

	gray := material.DefaultMaterial()
	gray.Color = core.NewColor(0.5, 0.5, 0.5)
	gray.Specular = 0
	addFloor(w, gray)

	// Left: tall red cylinder, capped
	left := geometry.NewCappedCylinder(0, 2)
	left.SetTransform(core.Scaling(0.5, 1, 0.5).Then(core.Translation(-1.5, 0, 0)))
	red := material.DefaultMaterial()
	red.Color = core.NewColor(0.8, 0.2, 0.2)
	left.SetMaterial(red)
	w.AddObject(left)

	// Center: gold tube tipped toward the camera, open so it can be looked into
	center := geometry.NewCylinder()
	center.Minimum, center.Maximum = -1, 1
	center.SetTransform(core.Scaling(0.4, 1, 0.4).
		Then(core.RotationX(math.Pi / 2.5)).
		Then(core.Translation(0, 0.8, 0.5)))
	gold := material.DefaultMaterial()
	gold.Color = core.NewColor(0.8, 0.6, 0.2)
	gold.Reflective = 0.3
	gold.Shininess = 50
	center.SetMaterial(gold)
	w.AddObject(center)

	// Right: short wide blue cylinder lying on its side
	right := geometry.NewCappedCylinder(-0.3, 0.3)
	right.SetTransform(core.Scaling(0.6, 1, 0.6).
		Then(core.RotationZ(math.Pi / 2)).
		Then(core.Translation(1.6, 0.6, 0)))
	blue := material.DefaultMaterial()
	blue.Color = core.NewColor(0.2, 0.2, 0.8)
	right.SetMaterial(blue)
	w.AddObject(right)

	return &Scene{World: w, Camera: camera}
}

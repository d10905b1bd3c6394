package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewConeTestScene creates a closed cone, an open cone and a glass
// double cone on a striped floor
func NewConeTestScene(cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  400,
		Height: 225,
		FOV:    math.Pi / 3,
		From:   core.Point(0, 2, -6),
		To:     core.Point(0, 1, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-6, 10, -8), core.White))

	stripes := material.NewStripes(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.6, 0.6, 0.6))
	stripes.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.RotationY(math.Pi / 4)))
	floor := material.DefaultMaterial()
	floor.Pattern = w.AddPattern(stripes)
	floor.Specular = 0
	addFloor(w, floor)

	// Left: solid cone standing on its base
	left := geometry.NewCappedCone(-1, 0)
	left.SetTransform(core.Scaling(0.6, 1.5, 0.6).Then(core.Translation(-1.6, 1.5, 0)))
	green := material.DefaultMaterial()
	green.Color = core.NewColor(0.2, 0.7, 0.3)
	left.SetMaterial(green)
	w.AddObject(left)

	// Center: open funnel
	center := geometry.NewCone()
	center.Minimum, center.Maximum = 0, 1
	center.SetTransform(core.Scaling(0.7, 1, 0.7).Then(core.Translation(0, 0.2, 0.5)))
	orange := material.DefaultMaterial()
	orange.Color = core.NewColor(0.9, 0.5, 0.1)
	center.SetMaterial(orange)
	w.AddObject(center)

	// Right: glass hourglass made from both nappes
	right := geometry.NewCappedCone(-1, 1)
	right.SetTransform(core.Scaling(0.5, 0.8, 0.5).Then(core.Translation(1.6, 0.8, 0)))
	glass := material.GlassMaterial()
	glass.Color = core.NewColor(0.1, 0.1, 0.1)
	glass.Reflective = 0.5
	right.SetMaterial(glass)
	w.AddObject(right)

	return &Scene{World: w, Camera: camera}
}

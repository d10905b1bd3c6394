package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewCSGScene creates a rounded die (cube intersected with a sphere) with
// a spherical bite taken out of one face
func NewCSGScene(cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  400,
		Height: 300,
		FOV:    math.Pi / 3,
		From:   core.Point(2.5, 3, -4),
		To:     core.Point(0, 0.8, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-5, 8, -6), core.White))

	gray := material.DefaultMaterial()
	gray.Color = core.NewColor(0.6, 0.6, 0.6)
	gray.Specular = 0
	addFloor(w, gray)

	ivory := material.DefaultMaterial()
	ivory.Color = core.NewColor(1, 0.95, 0.85)
	ivory.Specular = 0.4
	ivory.Shininess = 100
	red := material.DefaultMaterial()
	red.Color = core.NewColor(0.8, 0.1, 0.1)

	bite := geometry.NewCSG(geometry.CSGDifference)
	bite.SetTransform(core.RotationY(math.Pi / 8).Then(core.Translation(0, 1, 0)))
	biteIndex := w.AddObject(bite)

	die := geometry.NewCSG(geometry.CSGIntersection)
	dieIndex := mustAddChild(w, biteIndex, die)

	cube := geometry.NewCube()
	cube.SetMaterial(ivory)
	mustAddChild(w, dieIndex, cube)

	rounding := geometry.NewSphere()
	rounding.SetTransform(core.Scaling(1.35, 1.35, 1.35))
	rounding.SetMaterial(ivory)
	mustAddChild(w, dieIndex, rounding)

	scoop := geometry.NewSphere()
	scoop.SetTransform(core.Scaling(0.6, 0.6, 0.6).Then(core.Translation(0, 0, -1.1)))
	scoop.SetMaterial(red)
	mustAddChild(w, biteIndex, scoop)

	return &Scene{World: w, Camera: camera}
}

// mustAddChild is for hand-built scenes whose hierarchy is known to be valid
func mustAddChild(w *World, parent int, s geometry.Shape) int {
	index, err := w.AddChild(parent, s)
	if err != nil {
		panic(err)
	}
	return index
}

package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewHexagonScene creates a ring of six sides, each a group of one corner
// sphere and one edge cylinder, all nested inside a tilted outer group
func NewHexagonScene(cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  300,
		Height: 300,
		FOV:    math.Pi / 3,
		From:   core.Point(0, 2.5, -3),
		To:     core.Point(0, 0, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-4, 6, -6), core.White))

	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.9, 0.3, 0.4)
	m.Reflective = 0.1

	hex := geometry.NewGroup()
	hex.SetTransform(core.RotationX(-math.Pi / 6))
	hexIndex := w.AddObject(hex)

	for n := 0; n < 6; n++ {
		if err := addHexagonSide(w, hexIndex, float64(n)*math.Pi/3, m); err != nil {
			panic(err)
		}
	}

	return &Scene{World: w, Camera: camera}
}

func addHexagonSide(w *World, parent int, angle float64, m material.Material) error {
	side := geometry.NewGroup()
	side.SetTransform(core.RotationY(angle))
	sideIndex, err := w.AddChild(parent, side)
	if err != nil {
		return err
	}

	corner := geometry.NewSphere()
	corner.SetTransform(core.Scaling(0.25, 0.25, 0.25).Then(core.Translation(0, 0, -1)))
	corner.SetMaterial(m)
	if _, err := w.AddChild(sideIndex, corner); err != nil {
		return err
	}

	edge := geometry.NewCylinder()
	edge.Minimum, edge.Maximum = 0, 1
	edge.SetTransform(core.Scaling(0.25, 1, 0.25).
		Then(core.RotationZ(-math.Pi / 2)).
		Then(core.RotationY(-math.Pi / 6)).
		Then(core.Translation(0, 0, -1)))
	edge.SetMaterial(m)
	_, err = w.AddChild(sideIndex, edge)
	return err
}

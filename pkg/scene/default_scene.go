package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres resting on a floor in front of two walls
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  400,
		Height: 200,
		FOV:    math.Pi / 3,
		From:   core.Point(0, 1.5, -5),
		To:     core.Point(0, 1, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-10, 10, -10), core.White))

	// Matte off-white for the room
	room := material.DefaultMaterial()
	room.Color = core.NewColor(1, 0.9, 0.9)
	room.Specular = 0

	addFloor(w, room)
	addWall(w, 5, -math.Pi/4, room)
	addWall(w, 5, math.Pi/4, room)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.1, 1, 0.5)
	m.Diffuse = 0.7
	m.Specular = 0.3
	middle.SetMaterial(m)
	w.AddObject(middle)

	right := geometry.NewSphere()
	right.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.Translation(1.5, 0.5, -0.5)))
	m.Color = core.NewColor(0.5, 1, 0.1)
	right.SetMaterial(m)
	w.AddObject(right)

	left := geometry.NewSphere()
	left.SetTransform(core.Scaling(0.33, 0.33, 0.33).Then(core.Translation(-1.5, 0.33, -0.75)))
	m.Color = core.NewColor(1, 0.8, 0.1)
	left.SetMaterial(m)
	w.AddObject(left)

	return &Scene{World: w, Camera: camera}
}

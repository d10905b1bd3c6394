package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell box built from a single inward-facing
// cube, lit by a point light below the ceiling, holding a mirror sphere
// and a glass sphere
func NewCornellScene(cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  400,
		Height: 400,
		FOV:    math.Pi / 4,
		From:   core.Point(0, 1, -1.9),
		To:     core.Point(0, 1, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(0, 1.9, 0), core.NewColor(1, 0.95, 0.9)))

	white := material.DefaultMaterial()
	white.Color = core.NewColor(0.73, 0.73, 0.73)
	white.Ambient = 0.15
	white.Specular = 0

	// Floor, ceiling and walls are the inside faces of one box that also
	// encloses the camera
	room := geometry.NewCube()
	room.SetTransform(core.Scaling(1, 1, 2).Then(core.Translation(0, 1, 0)))
	room.SetMaterial(white)
	w.AddObject(room)

	red := white
	red.Color = core.NewColor(0.65, 0.05, 0.05)
	addSideWall(w, -0.999, red)

	green := white
	green.Color = core.NewColor(0.12, 0.45, 0.15)
	addSideWall(w, 0.999, green)

	mirror := geometry.NewSphere()
	mirror.SetTransform(core.Scaling(0.3, 0.3, 0.3).Then(core.Translation(-0.4, 0.3, 0.3)))
	chrome := material.DefaultMaterial()
	chrome.Color = core.NewColor(0.1, 0.1, 0.1)
	chrome.Reflective = 0.9
	chrome.Shininess = 300
	mirror.SetMaterial(chrome)
	w.AddObject(mirror)

	ball := geometry.NewSphere()
	ball.SetTransform(core.Scaling(0.35, 0.35, 0.35).Then(core.Translation(0.4, 0.35, -0.3)))
	glass := material.GlassMaterial()
	glass.Color = core.Black
	glass.Ambient = 0
	glass.Diffuse = 0.1
	glass.Specular = 1
	glass.Shininess = 300
	glass.Reflective = 0.9
	ball.SetMaterial(glass)
	w.AddObject(ball)

	return &Scene{World: w, Camera: camera}
}

// addSideWall adds a thin colored box just inside the room at x
func addSideWall(w *World, x float64, m material.Material) int {
	wall := geometry.NewCube()
	wall.SetTransform(core.Scaling(0.001, 1, 2).Then(core.Translation(x, 1, 0)))
	wall.SetMaterial(m)
	return w.AddObject(wall)
}

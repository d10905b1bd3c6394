package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NewGlassScene creates a hollow glass sphere, a mirror sphere and a
// colored ball over a reflective checkered floor
func NewGlassScene(cameraOverrides ...CameraConfig) *Scene {
	camera := cameraConfig(CameraConfig{
		Width:  400,
		Height: 300,
		FOV:    math.Pi / 3,
		From:   core.Point(0, 2.5, -6),
		To:     core.Point(0, 1, 0),
		Up:     core.Vector(0, 1, 0),
	}, cameraOverrides)

	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-8, 10, -8), core.White))

	checker := material.NewChecker(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.15, 0.15, 0.15))
	floor := material.DefaultMaterial()
	floor.Pattern = w.AddPattern(checker)
	floor.Reflective = 0.3
	floor.Specular = 0
	addFloor(w, floor)

	backdrop := material.DefaultMaterial()
	backdrop.Color = core.NewColor(0.3, 0.45, 0.7)
	backdrop.Specular = 0
	addWall(w, 10, 0, backdrop)

	// Solid glass shell with an air bubble inside; the bubble's index is
	// what the ray leaves when it exits the inner surface
	shell := geometry.NewSphere()
	shell.SetTransform(core.Translation(0, 1, 0))
	glass := material.GlassMaterial()
	glass.Color = core.Black
	glass.Ambient = 0
	glass.Diffuse = 0.1
	glass.Specular = 1
	glass.Shininess = 300
	glass.Reflective = 0.9
	glass.RefractiveIndex = material.Glass
	shell.SetMaterial(glass)
	w.AddObject(shell)

	bubble := geometry.NewSphere()
	bubble.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.Translation(0, 1, 0)))
	air := glass
	air.RefractiveIndex = material.Air
	bubble.SetMaterial(air)
	w.AddObject(bubble)

	mirror := geometry.NewSphere()
	mirror.SetTransform(core.Scaling(0.7, 0.7, 0.7).Then(core.Translation(-2, 0.7, 1.5)))
	chrome := material.DefaultMaterial()
	chrome.Color = core.NewColor(0.1, 0.1, 0.1)
	chrome.Diffuse = 0.2
	chrome.Reflective = 0.9
	chrome.Shininess = 300
	mirror.SetMaterial(chrome)
	w.AddObject(mirror)

	ball := geometry.NewSphere()
	ball.SetTransform(core.Scaling(0.5, 0.5, 0.5).Then(core.Translation(1.8, 0.5, 1)))
	red := material.DefaultMaterial()
	red.Color = core.NewColor(0.9, 0.2, 0.2)
	ball.SetMaterial(red)
	w.AddObject(ball)

	return &Scene{World: w, Camera: camera}
}

package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Scene pairs a world with the camera that frames it
type Scene struct {
	World  *World
	Camera CameraConfig
}

// CameraConfig describes the camera a scene is rendered with
type CameraConfig struct {
	Width  int     // Image width in pixels
	Height int     // Image height in pixels
	FOV    float64 // Horizontal field of view in radians
	From   core.Tuple
	To     core.Tuple
	Up     core.Tuple
}

// View returns the camera's view transform
func (c CameraConfig) View() core.Matrix {
	return core.ViewTransform(c.From, c.To, c.Up)
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.Height > 0 {
		base.Height = override.Height
	}
	if override.FOV > 0 {
		base.FOV = override.FOV
	}
	if override.From != (core.Tuple{}) {
		base.From = override.From
	}
	if override.To != (core.Tuple{}) {
		base.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		base.Up = override.Up
	}
	return base
}

// cameraConfig applies the first override, if any, to defaults
func cameraConfig(defaults CameraConfig, overrides []CameraConfig) CameraConfig {
	if len(overrides) > 0 {
		return MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}

// PrimitiveCount returns the number of shapes that carry a surface. Groups
// and CSG nodes only organise other shapes and are not counted.
func (s *Scene) PrimitiveCount() int {
	count := 0
	for i := 0; i < s.World.Len(); i++ {
		switch s.World.Object(i).(type) {
		case *geometry.Group, *geometry.CSG:
		default:
			count++
		}
	}
	return count
}

// addFloor adds a plane at y=0 with the given material
func addFloor(w *World, m material.Material) int {
	floor := geometry.NewPlane()
	floor.SetMaterial(m)
	return w.AddObject(floor)
}

// addWall adds a plane rotated to stand upright at distance along z,
// turned by yaw around the y axis
func addWall(w *World, distance, yaw float64, m material.Material) int {
	wall := geometry.NewPlane()
	wall.SetTransform(core.RotationX(math.Pi / 2).
		Then(core.Translation(0, 0, distance)).
		Then(core.RotationY(yaw)))
	wall.SetMaterial(m)
	return w.AddObject(wall)
}

package material

import "github.com/df07/go-recursive-raytracer/pkg/core"

// PointLight is a light source with no size
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

package material

import "github.com/df07/go-recursive-raytracer/pkg/core"

// NoPattern marks a material that uses its flat color
const NoPattern = -1

// Refractive indices of common media
const (
	Vacuum  = 1.0
	Air     = 1.00029
	Water   = 1.333
	Glass   = 1.52
	Diamond = 2.417
)

// Material describes how a surface responds to light under the Phong model
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // 0 = matte, 1 = perfect mirror
	Transparency    float64 // 0 = opaque, 1 = fully transparent
	RefractiveIndex float64 // >= 1
	Pattern         int     // index into the world's pattern table, or NoPattern
}

// DefaultMaterial returns a white material with the standard Phong defaults
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: Vacuum,
		Pattern:         NoPattern,
	}
}

// GlassMaterial returns a fully transparent material with a glass index
func GlassMaterial() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return m
}

// HasPattern reports whether the material samples a pattern
func (m Material) HasPattern() bool {
	return m.Pattern != NoPattern
}

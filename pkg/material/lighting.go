package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// PatternSource resolves pattern indices stored on materials
type PatternSource interface {
	Pattern(index int) (Pattern, bool)
}

// Lighting evaluates the Phong reflection model at a point. The base color
// comes from the material's pattern when it has one, otherwise from its flat
// color. A point in shadow receives only the ambient term.
func Lighting(m Material, object ObjectSpace, light PointLight, point, eyev, normalv core.Tuple, inShadow bool, patterns PatternSource) core.Color {
	color := m.Color
	if m.HasPattern() && patterns != nil {
		if p, ok := patterns.Pattern(m.Pattern); ok {
			color = PatternAtShape(p, object, point)
		}
	}

	effective := color.Hadamard(light.Intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normalv)
	if reflectDotEye := reflectv.Dot(eyev); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}

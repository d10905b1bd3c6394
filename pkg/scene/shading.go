package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// ColorAt traces r into the world and returns the color it sees. A ray
// that hits nothing sees black.
func (w *World) ColorAt(r core.Ray) core.Color {
	xs := w.Intersect(r)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(PrepareComputations(hit, r, w, xs))
}

// ShadeHit combines direct lighting with reflected and refracted light.
// Surfaces that both reflect and transmit split the two by Schlick's
// approximation. Lighting samples materials at the over point so solid
// patterns on a surface never read the far side of a cell boundary.
func (w *World) ShadeHit(c Computations) core.Color {
	m := c.Object.Material()

	surface := core.Black
	if light, ok := w.Light(); ok {
		surface = material.Lighting(m, w.objectSpace(c.Object), light,
			c.OverPoint, c.EyeV, c.NormalV, w.IsShadowed(c.OverPoint), w)
	}

	reflected := w.ReflectedColor(c)
	refracted := w.RefractedColor(c)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(c)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor returns the light arriving along the reflection vector,
// scaled by the material's reflectivity
func (w *World) ReflectedColor(c Computations) core.Color {
	reflective := c.Object.Material().Reflective
	if reflective == 0 || c.Ray.Exhausted() {
		return core.Black
	}
	r := c.Ray.Bounce(c.OverPoint, c.ReflectV)
	return w.ColorAt(r).Multiply(reflective)
}

// RefractedColor returns the light transmitted through the surface along
// the Snell direction. Total internal reflection transmits nothing.
func (w *World) RefractedColor(c Computations) core.Color {
	transparency := c.Object.Material().Transparency
	if transparency == 0 || c.Ray.Exhausted() {
		return core.Black
	}

	nRatio := c.N1 / c.N2
	cosI := c.EyeV.Dot(c.NormalV)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := c.NormalV.Multiply(nRatio*cosI - cosT).Subtract(c.EyeV.Multiply(nRatio))
	r := c.Ray.Bounce(c.UnderPoint, direction)
	return w.ColorAt(r).Multiply(transparency)
}

// IsShadowed reports whether any surface lies between point and the light
func (w *World) IsShadowed(point core.Tuple) bool {
	light, ok := w.Light()
	if !ok {
		return false
	}
	v := light.Position.Subtract(point)
	distance := v.Magnitude()
	hit, ok := w.Intersect(core.NewRay(point, v.Normalize())).Hit()
	return ok && hit.T < distance
}

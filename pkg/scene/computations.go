package scene

import (
	"math"
	"slices"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// Computations is the surface state at a hit, precomputed once and shared
// by lighting, shadow, reflection and refraction
type Computations struct {
	T      float64
	Object geometry.Shape
	// Ray is the ray that produced the hit; secondary rays bounce off it
	Ray core.Ray

	Point      core.Tuple
	OverPoint  core.Tuple // nudged along the normal, for shadow and reflection rays
	UnderPoint core.Tuple // nudged against the normal, for refraction rays
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool

	// N1 and N2 are the refractive indices of the media the ray leaves and enters
	N1, N2 float64
}

// PrepareComputations computes the surface state for hit. xs is the full
// sorted list hit came from; it is walked to find which transparent
// objects contain the hit point, which determines N1 and N2.
func PrepareComputations(hit geometry.Intersection, r core.Ray, w *World, xs geometry.Intersections) Computations {
	object := w.Object(hit.Object)
	point := r.Position(hit.T)
	c := Computations{
		T:       hit.T,
		Object:  object,
		Ray:     r,
		Point:   point,
		EyeV:    r.Direction.Negate(),
		NormalV: geometry.NormalAt(object, point, hit, w),
		N1:      1.0,
		N2:      1.0,
	}

	if c.NormalV.Dot(c.EyeV) < 0 {
		c.Inside = true
		c.NormalV = c.NormalV.Negate()
	}
	c.ReflectV = r.Direction.Reflect(c.NormalV)
	offset := c.NormalV.Multiply(core.Epsilon)
	c.OverPoint = point.Add(offset)
	c.UnderPoint = point.Subtract(offset)

	var containers []int
	for _, x := range xs {
		if x == hit {
			c.N1 = w.refractiveIndex(containers)
		}
		if i := slices.Index(containers, x.Object); i >= 0 {
			containers = slices.Delete(containers, i, i+1)
		} else {
			containers = append(containers, x.Object)
		}
		if x == hit {
			c.N2 = w.refractiveIndex(containers)
			break
		}
	}

	return c
}

// refractiveIndex is the index of the innermost object of containers, or
// vacuum when the ray is inside nothing
func (w *World) refractiveIndex(containers []int) float64 {
	if len(containers) == 0 {
		return 1.0
	}
	return w.Object(containers[len(containers)-1]).Material().RefractiveIndex
}

// Schlick approximates the fraction of light reflected at the hit. It is
// 1 under total internal reflection.
func Schlick(c Computations) float64 {
	cos := c.EyeV.Dot(c.NormalV)
	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2t)
	}
	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}

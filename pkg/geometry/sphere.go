package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Sphere is the unit sphere centred at the object-space origin
type Sphere struct {
	Base
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{Base: newBase()}
}

// LocalIntersect solves |o + t*d|^2 = 1 for t
func (s *Sphere) LocalIntersect(r core.Ray, _ Lookup) Intersections {
	sphereToRay := r.Origin.Subtract(core.Point(0, 0, 0))

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return Intersections{}
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return Intersections{
		NewIntersection(t1, s.index),
		NewIntersection(t2, s.index),
	}
}

// LocalNormalAt points from the centre through p
func (s *Sphere) LocalNormalAt(p core.Tuple, _ Intersection) core.Tuple {
	return p.Subtract(core.Point(0, 0, 0))
}

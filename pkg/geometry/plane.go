package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Plane is the infinite x-z plane through the object-space origin
type Plane struct {
	Base
}

// NewPlane creates an x-z plane with the default material
func NewPlane() *Plane {
	return &Plane{Base: newBase()}
}

// LocalIntersect returns at most one hit. Rays parallel to (or inside)
// the plane miss.
func (p *Plane) LocalIntersect(r core.Ray, _ Lookup) Intersections {
	if math.Abs(r.Direction.Y) < core.Epsilon {
		return Intersections{}
	}
	t := -r.Origin.Y / r.Direction.Y
	return Intersections{NewIntersection(t, p.index)}
}

// LocalNormalAt is constant: the plane faces +y everywhere
func (p *Plane) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	return core.Vector(0, 1, 0)
}

package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder around the object-space y axis, truncated
// to (Minimum, Maximum) and optionally capped
type Cylinder struct {
	Base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		Base:    newBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewCappedCylinder creates a closed cylinder between minimum and maximum
func NewCappedCylinder(minimum, maximum float64) *Cylinder {
	c := NewCylinder()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = true
	return c
}

// LocalIntersect tests the side wall, then the caps
func (c *Cylinder) LocalIntersect(r core.Ray, _ Lookup) Intersections {
	xs := Intersections{}

	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z
	// a ~ 0 means the ray runs parallel to the y axis; only caps can be hit
	if math.Abs(a) >= core.Epsilon {
		b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
		cc := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

		if disc := b*b - 4*a*cc; disc >= 0 {
			xs = appendSideHits(r, c.index, c.Minimum, c.Maximum, a, b, disc, xs)
		}
	}

	if c.Closed {
		xs = intersectCaps(r, c.index, c.Minimum, c.Maximum, 1, 1, xs)
	}
	return xs
}

// LocalNormalAt returns the cap normal for points on a cap, else the radial normal
func (c *Cylinder) LocalNormalAt(p core.Tuple, _ Intersection) core.Tuple {
	dist := p.X*p.X + p.Z*p.Z

	if dist < 1 && p.Y >= c.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < 1 && p.Y <= c.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}
	return core.Vector(p.X, 0, p.Z)
}

// appendSideHits solves the side quadratic and keeps the roots whose y lies
// strictly between minimum and maximum
func appendSideHits(r core.Ray, index int, minimum, maximum, a, b, disc float64, xs Intersections) Intersections {
	sqrtD := math.Sqrt(disc)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if y0 := r.Origin.Y + t0*r.Direction.Y; minimum < y0 && y0 < maximum {
		xs = append(xs, NewIntersection(t0, index))
	}
	if y1 := r.Origin.Y + t1*r.Direction.Y; minimum < y1 && y1 < maximum {
		xs = append(xs, NewIntersection(t1, index))
	}
	return xs
}

// intersectCaps adds hits with the flat discs at y = minimum and
// y = maximum whose radii are minRadius and maxRadius
func intersectCaps(r core.Ray, index int, minimum, maximum, minRadius, maxRadius float64, xs Intersections) Intersections {
	if math.Abs(r.Direction.Y) < core.Epsilon {
		return xs
	}

	if t := (minimum - r.Origin.Y) / r.Direction.Y; checkCap(r, t, minRadius) {
		xs = append(xs, NewIntersection(t, index))
	}
	if t := (maximum - r.Origin.Y) / r.Direction.Y; checkCap(r, t, maxRadius) {
		xs = append(xs, NewIntersection(t, index))
	}
	return xs
}

// checkCap reports whether the ray at t lies within radius of the y axis
func checkCap(r core.Ray, t, radius float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return x*x+z*z <= radius*radius
}

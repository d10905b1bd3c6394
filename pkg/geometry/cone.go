package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Cone is the double-napped cone x^2 + z^2 = y^2 around the object-space
// y axis, truncated to (Minimum, Maximum) and optionally capped
type Cone struct {
	Base
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone
func NewCone() *Cone {
	return &Cone{
		Base:    newBase(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// NewCappedCone creates a closed cone between minimum and maximum
func NewCappedCone(minimum, maximum float64) *Cone {
	c := NewCone()
	c.Minimum = minimum
	c.Maximum = maximum
	c.Closed = true
	return c
}

// LocalIntersect tests both nappes, then the caps. The cap at height y has
// radius |y|.
func (c *Cone) LocalIntersect(r core.Ray, _ Lookup) Intersections {
	xs := Intersections{}
	d, o := r.Direction, r.Origin

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	if math.Abs(a) < core.Epsilon {
		// parallel to one nappe: a single hit on the other, if any
		if math.Abs(b) >= core.Epsilon {
			t := -cc / (2 * b)
			if y := o.Y + t*d.Y; c.Minimum < y && y < c.Maximum {
				xs = append(xs, NewIntersection(t, c.index))
			}
		}
	} else if disc := b*b - 4*a*cc; disc >= 0 {
		xs = appendSideHits(r, c.index, c.Minimum, c.Maximum, a, b, disc, xs)
	}

	if c.Closed {
		xs = intersectCaps(r, c.index, c.Minimum, c.Maximum, math.Abs(c.Minimum), math.Abs(c.Maximum), xs)
	}
	return xs
}

// LocalNormalAt returns the cap normal on a cap, otherwise the slope normal
func (c *Cone) LocalNormalAt(p core.Tuple, _ Intersection) core.Tuple {
	dist := p.X*p.X + p.Z*p.Z

	if dist < c.Maximum*c.Maximum && p.Y >= c.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < c.Minimum*c.Minimum && p.Y <= c.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return core.Vector(p.X, y, p.Z)
}

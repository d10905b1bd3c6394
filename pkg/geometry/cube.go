package geometry

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every object-space axis
type Cube struct {
	Base
}

// NewCube creates a unit cube with the default material
func NewCube() *Cube {
	return &Cube{Base: newBase()}
}

// LocalIntersect uses the slab method: the ray is inside the cube where
// the parameter ranges of all three axis slabs overlap.
func (c *Cube) LocalIntersect(r core.Ray, _ Lookup) Intersections {
	xtmin, xtmax := checkAxis(r.Origin.X, r.Direction.X, -1, 1)
	ytmin, ytmax := checkAxis(r.Origin.Y, r.Direction.Y, -1, 1)
	ztmin, ztmax := checkAxis(r.Origin.Z, r.Direction.Z, -1, 1)

	tmin := max(xtmin, ytmin, ztmin)
	tmax := min(xtmax, ytmax, ztmax)
	if tmin > tmax {
		return Intersections{}
	}
	return Intersections{
		NewIntersection(tmin, c.index),
		NewIntersection(tmax, c.index),
	}
}

// LocalNormalAt picks the face whose axis has the largest absolute component
func (c *Cube) LocalNormalAt(p core.Tuple, _ Intersection) core.Tuple {
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	maxc := max(ax, ay, az)

	switch maxc {
	case ax:
		return core.Vector(p.X, 0, 0)
	case ay:
		return core.Vector(0, p.Y, 0)
	default:
		return core.Vector(0, 0, p.Z)
	}
}

// checkAxis returns the entry and exit t for one slab. A direction
// component of ~0 sends the bounds to +/- infinity.
func checkAxis(origin, direction, lo, hi float64) (tmin, tmax float64) {
	tminNumerator := lo - origin
	tmaxNumerator := hi - origin

	if math.Abs(direction) >= core.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		// a ray lying exactly on a slab boundary counts as inside it
		tmin = math.Inf(-1)
		if tminNumerator > 0 {
			tmin = math.Inf(1)
		}
		tmax = math.Inf(1)
		if tmaxNumerator < 0 {
			tmax = math.Inf(-1)
		}
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

package geometry

import (
	"cmp"
	"slices"
)

// Intersection records where along a ray an object was hit. U and V are
// barycentric coordinates, set only by triangles.
type Intersection struct {
	T      float64
	Object int
	U, V   float64
}

// NewIntersection creates an intersection at t with the object at index
func NewIntersection(t float64, object int) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates an intersection carrying barycentric coordinates
func NewIntersectionUV(t float64, object int, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// Intersections is a list of hits along one ray
type Intersections []Intersection

// Sort orders the intersections by ascending t
func (xs Intersections) Sort() {
	slices.SortStableFunc(xs, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
}

// Hit returns the intersection with the lowest non-negative t. The list
// does not need to be sorted. ok is false when every t is negative.
func (xs Intersections) Hit() (hit Intersection, ok bool) {
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !ok || x.T < hit.T {
			hit = x
			ok = true
		}
	}
	return hit, ok
}

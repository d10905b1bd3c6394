package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Group is a container whose transform applies to every child. Children
// live in the arena and are referenced by index.
type Group struct {
	Base
	children []int
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{Base: newBase()}
}

// Children returns the arena indices of the group's direct children
func (g *Group) Children() []int {
	return g.children
}

func (g *Group) appendChild(index int) error {
	g.children = append(g.children, index)
	return nil
}

// LocalIntersect intersects every child in the group's object space and
// returns the combined hits sorted by t
func (g *Group) LocalIntersect(r core.Ray, objects Lookup) Intersections {
	xs := Intersections{}
	for _, child := range g.children {
		xs = append(xs, Intersect(objects.Object(child), r, objects)...)
	}
	xs.Sort()
	return xs
}

// LocalNormalAt must never be reached: hits always name a leaf shape
func (g *Group) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	panic("geometry: normal requested for a group")
}

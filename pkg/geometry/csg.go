package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Operation is a constructive solid geometry operator
type Operation int

const (
	CSGUnion Operation = iota
	CSGIntersection
	CSGDifference
)

func (op Operation) String() string {
	switch op {
	case CSGUnion:
		return "union"
	case CSGIntersection:
		return "intersection"
	case CSGDifference:
		return "difference"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// CSG combines two operand shapes. The operands are added to the arena as
// its children: the first one added is the left operand.
type CSG struct {
	Base
	Op          Operation
	left, right int
}

// NewCSG creates a CSG node with no operands yet
func NewCSG(op Operation) *CSG {
	return &CSG{Base: newBase(), Op: op, left: -1, right: -1}
}

// Left returns the arena index of the left operand, -1 if unset
func (c *CSG) Left() int { return c.left }

// Right returns the arena index of the right operand, -1 if unset
func (c *CSG) Right() int { return c.right }

func (c *CSG) appendChild(index int) error {
	switch {
	case c.left == -1:
		c.left = index
	case c.right == -1:
		c.right = index
	default:
		return ErrCSGFull
	}
	return nil
}

// IntersectionAllowed decides whether a hit survives the operation.
// lhit is true when the hit is on the left operand; inl and inr say whether
// the ray is currently inside the left and right operands.
func IntersectionAllowed(op Operation, lhit, inl, inr bool) bool {
	switch op {
	case CSGUnion:
		return (lhit && !inr) || (!lhit && !inl)
	case CSGIntersection:
		return (lhit && inr) || (!lhit && inl)
	case CSGDifference:
		return (lhit && !inr) || (!lhit && inl)
	}
	return false
}

// filter keeps the hits allowed by the operation. xs must be sorted.
func (c *CSG) filter(xs Intersections, objects Lookup) Intersections {
	var inl, inr bool
	result := Intersections{}

	for _, x := range xs {
		lhit := Includes(objects, c.left, x.Object)
		if IntersectionAllowed(c.Op, lhit, inl, inr) {
			result = append(result, x)
		}
		if lhit {
			inl = !inl
		} else {
			inr = !inr
		}
	}
	return result
}

// LocalIntersect intersects both operands and filters the merged hits
func (c *CSG) LocalIntersect(r core.Ray, objects Lookup) Intersections {
	if c.left == -1 || c.right == -1 {
		return Intersections{}
	}

	xs := Intersect(objects.Object(c.left), r, objects)
	xs = append(xs, Intersect(objects.Object(c.right), r, objects)...)
	xs.Sort()
	return c.filter(xs, objects)
}

// LocalNormalAt must never be reached: hits always name a leaf shape
func (c *CSG) LocalNormalAt(core.Tuple, Intersection) core.Tuple {
	panic("geometry: normal requested for a csg node")
}

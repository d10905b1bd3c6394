package geometry

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// NoParent marks a shape that sits directly in the world
const NoParent = -1

// Shape is the closed set of primitives a scene can contain. Local methods
// work entirely in object space; Intersect and NormalAt lift them to world
// space through the shape's transform and its parent chain.
type Shape interface {
	Transform() core.Matrix
	SetTransform(t core.Matrix)
	Inverse() core.Matrix
	Material() material.Material
	SetMaterial(m material.Material)
	Index() int
	Parent() int

	// LocalIntersect intersects a ray already in object space
	LocalIntersect(r core.Ray, objects Lookup) Intersections
	// LocalNormalAt returns the object-space normal at an object-space point
	LocalNormalAt(p core.Tuple, hit Intersection) core.Tuple

	base() *Base
}

// Lookup resolves arena indices to shapes. Groups and CSG nodes refer to
// their children, and children to their parent, only by index.
type Lookup interface {
	Object(index int) Shape
}

// Base holds the state every shape shares
type Base struct {
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	index            int
	parent           int
}

func newBase() Base {
	return Base{
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.DefaultMaterial(),
		index:            -1,
		parent:           NoParent,
	}
}

// Transform returns the object-to-parent transform
func (b *Base) Transform() core.Matrix { return b.transform }

// Inverse returns the cached inverse transform
func (b *Base) Inverse() core.Matrix { return b.inverse }

// SetTransform replaces the transform and refreshes the cached inverses.
// It panics if t is singular.
func (b *Base) SetTransform(t core.Matrix) {
	b.transform = t
	b.inverse = t.MustInverse()
	b.inverseTranspose = b.inverse.Transpose()
}

// Material returns a copy of the shape's material
func (b *Base) Material() material.Material { return b.material }

// SetMaterial replaces the shape's material
func (b *Base) SetMaterial(m material.Material) { b.material = m }

// Index returns the shape's slot in the arena, -1 until added
func (b *Base) Index() int { return b.index }

// Parent returns the index of the containing group, or NoParent
func (b *Base) Parent() int { return b.parent }

func (b *Base) base() *Base { return b }

// ObjectRay transforms a world (or parent) space ray into s's object space
func ObjectRay(s Shape, r core.Ray) core.Ray {
	return r.Transform(s.Inverse())
}

// Intersect transforms r into object space once and intersects s there.
// The result is never nil-checked by callers; an empty slice means a miss.
func Intersect(s Shape, r core.Ray, objects Lookup) Intersections {
	return s.LocalIntersect(ObjectRay(s, r), objects)
}

// WorldToObject converts a world point into s's object space, walking up
// through every enclosing group first.
func WorldToObject(s Shape, p core.Tuple, objects Lookup) core.Tuple {
	if parent := s.Parent(); parent != NoParent {
		p = WorldToObject(objects.Object(parent), p, objects)
	}
	return s.Inverse().MultiplyTuple(p)
}

// NormalToWorld converts an object-space normal to world space using the
// inverse transpose at every level of the parent chain
func NormalToWorld(s Shape, n core.Tuple, objects Lookup) core.Tuple {
	n = s.base().inverseTranspose.MultiplyTuple(n)
	n.W = 0
	n = n.Normalize()
	if parent := s.Parent(); parent != NoParent {
		n = NormalToWorld(objects.Object(parent), n, objects)
	}
	return n
}

// NormalAt returns the world-space surface normal of s at a world point
func NormalAt(s Shape, worldPoint core.Tuple, hit Intersection, objects Lookup) core.Tuple {
	local := WorldToObject(s, worldPoint, objects)
	return NormalToWorld(s, s.LocalNormalAt(local, hit), objects)
}

package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

var (
	// ErrNoLight is returned by Validate for a world without a light source
	ErrNoLight = errors.New("scene: world has no light")
	// ErrDanglingPattern is returned by Validate when a material names a pattern the world does not hold
	ErrDanglingPattern = errors.New("scene: material references unknown pattern")
	// ErrIncompleteCSG is returned by Validate for a CSG node missing an operand
	ErrIncompleteCSG = errors.New("scene: csg node is missing an operand")
)

// World holds every shape, pattern and the light of a scene. Shapes and
// patterns are referred to by their index in the world's tables. A world
// is not modified while it is being rendered, so any number of goroutines
// may trace rays through it at once.
type World struct {
	objects  geometry.Arena
	patterns []material.Pattern
	light    *material.PointLight
}

// NewWorld creates an empty world with no light
func NewWorld() *World {
	return &World{}
}

// DefaultWorld creates the two-sphere world lit from the upper left that
// most shading checks are written against
func DefaultWorld() *World {
	w := NewWorld()
	w.SetLight(material.NewPointLight(core.Point(-10, 10, -10), core.White))

	outer := geometry.NewSphere()
	m := material.DefaultMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)
	w.AddObject(outer)

	inner := geometry.NewSphere()
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))
	w.AddObject(inner)

	return w
}

// AddObject adds a top-level shape and returns its index. It panics if the
// shape already belongs to a world.
func (w *World) AddObject(s geometry.Shape) int {
	index, err := w.objects.Add(s)
	if err != nil {
		panic(err)
	}
	return index
}

// AddChild adds s to the group or CSG node at parent and returns its index
func (w *World) AddChild(parent int, s geometry.Shape) (int, error) {
	return w.objects.AddChild(parent, s)
}

// AddPattern stores p in the pattern table and returns the index a
// material should carry to sample it
func (w *World) AddPattern(p material.Pattern) int {
	p.SetIndex(len(w.patterns))
	w.patterns = append(w.patterns, p)
	return p.Index()
}

// SetLight replaces the world's light
func (w *World) SetLight(l material.PointLight) {
	w.light = &l
}

// Light returns the world's light, if it has one
func (w *World) Light() (material.PointLight, bool) {
	if w.light == nil {
		return material.PointLight{}, false
	}
	return *w.light, true
}

// Object returns the shape at index
func (w *World) Object(index int) geometry.Shape {
	return w.objects.Object(index)
}

// Len returns the number of shapes, nested ones included
func (w *World) Len() int {
	return w.objects.Len()
}

// Roots returns the top-level shapes in insertion order
func (w *World) Roots() []geometry.Shape {
	return w.objects.Roots()
}

// Pattern returns the pattern at index
func (w *World) Pattern(index int) (material.Pattern, bool) {
	if index < 0 || index >= len(w.patterns) {
		return nil, false
	}
	return w.patterns[index], true
}

// PatternCount returns the number of patterns in the world
func (w *World) PatternCount() int {
	return len(w.patterns)
}

// Intersect intersects r with every top-level shape and returns all hits
// sorted by t. Groups and CSG nodes recurse into their children.
func (w *World) Intersect(r core.Ray) geometry.Intersections {
	xs := geometry.Intersections{}
	for _, s := range w.objects.Roots() {
		xs = append(xs, geometry.Intersect(s, r, w)...)
	}
	xs.Sort()
	return xs
}

// Validate reports the first structural problem that would make a render
// of w meaningless
func (w *World) Validate() error {
	if w.light == nil {
		return ErrNoLight
	}
	for i := 0; i < w.objects.Len(); i++ {
		s := w.objects.Object(i)
		if m := s.Material(); m.HasPattern() {
			if _, ok := w.Pattern(m.Pattern); !ok {
				return fmt.Errorf("object %d uses pattern %d: %w", i, m.Pattern, ErrDanglingPattern)
			}
		}
		if c, ok := s.(*geometry.CSG); ok && (c.Left() == -1 || c.Right() == -1) {
			return fmt.Errorf("object %d: %w", i, ErrIncompleteCSG)
		}
	}
	return nil
}

// objectSpace adapts s's parent-aware world-to-object mapping for pattern lookups
func (w *World) objectSpace(s geometry.Shape) material.ObjectSpace {
	return material.ObjectSpaceFunc(func(p core.Tuple) core.Tuple {
		return geometry.WorldToObject(s, p, w)
	})
}

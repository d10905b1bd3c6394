package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotContainer is returned when adding a child to a shape that is not a group or CSG
	ErrNotContainer = errors.New("geometry: shape cannot hold children")
	// ErrCSGFull is returned when a CSG node already has both operands
	ErrCSGFull = errors.New("geometry: csg already has two operands")
	// ErrAlreadyAdded is returned when a shape is added to an arena twice
	ErrAlreadyAdded = errors.New("geometry: shape already belongs to an arena")
)

// container is implemented by shapes that reference children by index
type container interface {
	Shape
	appendChild(index int) error
}

// Arena is the flat, insertion-ordered table every shape of a scene lives
// in. Parent and child links are arena indices, never pointers.
type Arena struct {
	shapes []Shape
	roots  []Shape
}

// Add appends a top-level shape and returns its index
func (a *Arena) Add(s Shape) (int, error) {
	b := s.base()
	if b.index != -1 {
		return -1, ErrAlreadyAdded
	}
	b.index = len(a.shapes)
	b.parent = NoParent
	a.shapes = append(a.shapes, s)
	a.roots = append(a.roots, s)
	return b.index, nil
}

// AddChild appends s to the arena as a child of the group or CSG at parent.
// Only shapes not yet in an arena are accepted, so the hierarchy cannot
// contain cycles.
func (a *Arena) AddChild(parent int, s Shape) (int, error) {
	if parent < 0 || parent >= len(a.shapes) {
		return -1, fmt.Errorf("geometry: parent index %d out of range", parent)
	}
	c, ok := a.shapes[parent].(container)
	if !ok {
		return -1, fmt.Errorf("adding child to %T: %w", a.shapes[parent], ErrNotContainer)
	}
	b := s.base()
	if b.index != -1 {
		return -1, ErrAlreadyAdded
	}
	index := len(a.shapes)
	if err := c.appendChild(index); err != nil {
		return -1, err
	}
	b.index = index
	b.parent = parent
	a.shapes = append(a.shapes, s)
	return index, nil
}

// Object returns the shape at index
func (a *Arena) Object(index int) Shape {
	return a.shapes[index]
}

// Len returns the number of shapes, nested ones included
func (a *Arena) Len() int {
	return len(a.shapes)
}

// Roots returns the shapes that are not nested inside another shape, in
// insertion order. The slice must not be modified.
func (a *Arena) Roots() []Shape {
	return a.roots
}

// Includes reports whether target is container itself or nested anywhere
// beneath it
func Includes(objects Lookup, container, target int) bool {
	for i := target; i != NoParent; i = objects.Object(i).Parent() {
		if i == container {
			return true
		}
	}
	return false
}
